package domain

import (
	"time"
)

// Problem 描述一个固定的排班打分问题配置
// 创建后所有字段都应该视为只读
type Problem struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	Workers               []string  `json:"workers"`
	ShiftPreferences      [][]int   `json:"shiftPreferences"` // 每名员工对早、晚、夜三种班次的偏好，1 表示可以接受
	ShiftMin              []int     `json:"shiftMin"`         // 每种班次的最少值班人数
	ShiftMax              []int     `json:"shiftMax"`         // 每种班次的最多值班人数
	MaxShiftsPerWeek      int       `json:"maxShiftsPerWeek"`
	Weeks                 int       `json:"weeks"`
	HardConstraintPenalty int       `json:"hardConstraintPenalty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// DefaultProblem 返回内置的 10 人单周排班问题
func DefaultProblem(hardConstraintPenalty int) *Problem {
	return &Problem{
		Name:        "默认排班问题",
		Description: "内置的 10 名员工、单周的排班打分问题",
		Workers:     []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"},
		ShiftPreferences: [][]int{
			{1, 0, 0}, {1, 1, 0}, {0, 0, 1}, {0, 1, 0}, {0, 0, 1},
			{1, 1, 1}, {0, 1, 1}, {1, 1, 1}, {1, 0, 0}, {0, 1, 0},
		},
		ShiftMin:              []int{2, 2, 1},
		ShiftMax:              []int{3, 4, 2},
		MaxShiftsPerWeek:      5,
		Weeks:                 1,
		HardConstraintPenalty: hardConstraintPenalty,
	}
}
