package domain

// WorkerSchedule 是某名员工在整个排班中的值班序列
type WorkerSchedule struct {
	Worker string `json:"worker"`
	Shifts []int  `json:"shifts"`
}

// EvaluationReport 是对某个排班编码的完整诊断结果
// 其中各项违反数是打分所用的原始统计值
type EvaluationReport struct {
	Schedules                  []WorkerSchedule `json:"schedules"`
	ConsecutiveShiftViolations int              `json:"consecutiveShiftViolations"`
	WeeklyShifts               []int            `json:"weeklyShifts"`
	ShiftsPerWeekViolations    int              `json:"shiftsPerWeekViolations"`
	WorkersPerShift            []int            `json:"workersPerShift"`
	WorkersPerShiftViolations  int              `json:"workersPerShiftViolations"`
	ShiftPreferenceViolations  int              `json:"shiftPreferenceViolations"`
	CompetenceViolations       int              `json:"competenceViolations"`
	HardConstraintViolations   int              `json:"hardConstraintViolations"`
	SoftConstraintViolations   int              `json:"softConstraintViolations"`
	Cost                       int              `json:"cost"`
}
