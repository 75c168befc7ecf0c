package v1

import (
	"time"

	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/types"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Title         string              `json:"title" example:"Emergency Fund" default:""`                                                     // Title of the goal
	Description   string              `json:"description" example:"Six months of living expenses" default:""`                                // Description of the goal
	TargetAmount  decimal.Decimal     `json:"targetAmount" example:"15000" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"` // How much money should be saved for this goal
	CurrentAmount decimal.Decimal     `json:"currentAmount" example:"8500" minimum:"0" maximum:"999999999999.99999999" default:"0"`          // How much money is already saved
	Deadline      types.Date          `json:"deadline" example:"2024-12-31"`                                                                 // The date the goal should be reached by
	Category      models.GoalCategory `json:"category" example:"savings" enums:"savings,travel,purchase,investment,education,other"`         // Category of the goal. Defaults to savings
}

// model returns the store resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Title:         editable.Title,
		Description:   editable.Description,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
		Category:      editable.Category,
	}
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress      decimal.Decimal `json:"progress" example:"56.67"`    // Progress towards the target in percent, capped at 100
	Achieved      bool            `json:"achieved" example:"false"`    // Whether the target amount is reached
	DaysRemaining int             `json:"daysRemaining" example:"120"` // Days until the deadline, negative when it has passed
	Overdue       bool            `json:"overdue" example:"false"`     // Whether the deadline has passed without the goal being achieved
}

// newGoal returns the API v1 representation of the resource
func newGoal(model models.Goal, now time.Time) Goal {
	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Title:         model.Title,
			Description:   model.Description,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
			Category:      model.Category,
		},
		Progress:      model.Progress(),
		Achieved:      model.Achieved(),
		DaysRemaining: model.DaysRemaining(now),
		Overdue:       model.Overdue(now),
	}
}

type GoalResponse struct {
	Error *string `json:"error"` // The error, if any occurred
	Data  *Goal   `json:"data"`  // The resource
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`  // List of goals
	Error *string `json:"error"` // The error, if any occurred
}

type GoalAmountEditable struct {
	Amount decimal.Decimal `json:"amount" example:"250" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"` // The amount to add to the goal
}

type GoalAmountResponse struct {
	Error    *string `json:"error"`                    // The error, if any occurred
	Data     *Goal   `json:"data"`                     // The updated goal
	Achieved bool    `json:"achieved" example:"false"` // True exactly when this addition reached the target for the first time
}
