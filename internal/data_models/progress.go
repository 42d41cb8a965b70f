package dto

// Goal (monthly), Objective (quarterly) and Vision (yearly) share the same
// progress shape and differ only in their period key.

type CreateGoalRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TargetValue  float64  `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Unit         string   `json:"unit"`
	Month        int      `json:"month"`
	Year         int      `json:"year"`
}

type UpdateGoalRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	TargetValue  *float64 `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Unit         *string  `json:"unit"`
	Month        *int     `json:"month"`
	Year         *int     `json:"year"`
	IsCompleted  *bool    `json:"is_completed"`
}

type CreateObjectiveRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TargetValue  float64  `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Unit         string   `json:"unit"`
	Quarter      int      `json:"quarter"`
	Year         int      `json:"year"`
}

type UpdateObjectiveRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	TargetValue  *float64 `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Unit         *string  `json:"unit"`
	Quarter      *int     `json:"quarter"`
	Year         *int     `json:"year"`
	IsCompleted  *bool    `json:"is_completed"`
}

type CreateVisionRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TargetValue  float64  `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Unit         string   `json:"unit"`
	Year         int      `json:"year"`
}

type UpdateVisionRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	TargetValue  *float64 `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Unit         *string  `json:"unit"`
	Year         *int     `json:"year"`
	IsCompleted  *bool    `json:"is_completed"`
}
