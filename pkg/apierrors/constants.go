package apierrors

const (
	MsgUnauthorized = "unauthorized"

	MsgInvalidPlanPayload = "invalidPlanPayload"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidDate        = "invalidDate"

	MsgPlanNotFound  = "planNotFound"
	MsgTaskNotFound  = "taskNotFound"
	MsgDuplicatePlan = "duplicatePlan"

	MsgEndBeforeStart  = "endBeforeStart"
	MsgOutOfDayBounds  = "outOfDayBounds"
	MsgDayOverflow     = "dayOverflow"
	MsgCascadeOverflow = "cascadeOverflow"

	MsgFailCreatePlan   = "failCreatePlan"
	MsgFailListPlans    = "failListPlans"
	MsgFailFetchPlan    = "failFetchPlan"
	MsgFailPlanStats    = "failPlanStats"
	MsgFailAddTask      = "failAddTask"
	MsgFailUpdateTask   = "failUpdateTask"
	MsgFailCompleteTask = "failCompleteTask"
	MsgFailDeleteTask   = "failDeleteTask"
	MsgFailDeletePlan   = "failDeletePlan"
)
