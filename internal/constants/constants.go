package constants

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type TaskDomain string

const (
	DomainAcademic    TaskDomain = "academic"
	DomainFitness     TaskDomain = "fitness"
	DomainCreative    TaskDomain = "creative"
	DomainSocial      TaskDomain = "social"
	DomainMaintenance TaskDomain = "maintenance"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (d TaskDomain) Valid() bool {
	switch d {
	case DomainAcademic, DomainFitness, DomainCreative, DomainSocial, DomainMaintenance:
		return true
	}
	return false
}
