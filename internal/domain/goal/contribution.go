package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Contribution struct {
	Id               ulid.ULID       `json:"id"`
	GoalId           ulid.ULID       `json:"goalId"`
	UserId           ulid.ULID       `json:"userId"`
	Amount           decimal.Decimal `json:"amount"`
	ContributionDate time.Time       `json:"contributionDate"`
	CreatedAt        time.Time       `json:"createdAt"`
}
