// Package rewards computes the XP and Effort Unit awards granted when a task
// is completed. Both functions are pure: the only inputs are the task's
// priority or domain and the hours spent.
package rewards

import (
	"math"

	"batcave.app/batcave/internal/constants"
)

// Fallback multipliers applied when a priority or domain value is outside the
// known enumeration. This is a deliberate policy, not a coercion accident:
// unknown priorities score like medium, unknown domains score at 1.0.
const (
	FallbackPriorityXP       = 15.0
	FallbackDomainMultiplier = 1.0
)

var basePriorityXP = map[constants.TaskPriority]float64{
	constants.PriorityLow:    10,
	constants.PriorityMedium: 15,
	constants.PriorityHigh:   25,
	constants.PriorityUrgent: 40,
}

var domainMultiplier = map[constants.TaskDomain]float64{
	constants.DomainAcademic:    1.0,
	constants.DomainFitness:     2.5,
	constants.DomainCreative:    0.8,
	constants.DomainSocial:      1.2,
	constants.DomainMaintenance: 0.6,
}

// XP returns round(base[priority] * hours), half away from zero.
func XP(priority constants.TaskPriority, hours float64) int {
	base, ok := basePriorityXP[priority]
	if !ok {
		base = FallbackPriorityXP
	}
	return int(math.Round(base * hours))
}

// EU returns round(multiplier[domain] * hours * 10). The x10 keeps one
// decimal digit of effort representable as an integer.
func EU(domain constants.TaskDomain, hours float64) int {
	mult, ok := domainMultiplier[domain]
	if !ok {
		mult = FallbackDomainMultiplier
	}
	return int(math.Round(mult * hours * 10))
}
