package pkg

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	errEmptyULID   = errors.New("ULID string cannot be empty")
	errInvalidULID = errors.New("invalid ULID format")
)

// GenerateULIDObject usa a entropia monotonica padrao do pacote ulid, entao ids gerados
// no mesmo milissegundo seguem a ordem de criacao.
func GenerateULIDObject() ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy())
}

func ParseULID(ulidStr string) (ulid.ULID, error) {
	if ulidStr == "" {
		return ulid.ULID{}, errEmptyULID
	}

	parsedULID, err := ulid.Parse(ulidStr)
	if err != nil {
		return ulid.ULID{}, errInvalidULID
	}

	return parsedULID, nil
}

func IsEmptyULID(id ulid.ULID) bool {
	return id == ulid.ULID{}
}
