package roster

import (
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/domain"
)

const (
	// 每天固定分为早、晚、夜三个班次
	shiftsPerDay  = 3
	shiftsPerWeek = 7 * shiftsPerDay

	// 夜班在一天三个班次中的偏移量
	nightShiftOffset = 2
	// 只有配置中的前 5 名员工（资深员工）具备夜班资质
	seniorWorkerCount = 5
	// 夜班资质检查固定只覆盖每名员工序列的前 30 个位置
	// 这个范围与配置的周数无关，改动会破坏历史成本的可比性
	competenceWindowEnd = 30
)

// Evaluator 根据固定的问题配置对候选排班编码进行打分
// 配置在构造时被拷贝，之后只读，因此可以被多个 goroutine 并发使用
type Evaluator struct {
	problem *domain.Problem
}

// New 校验问题配置并创建对应的打分器
func New(p *domain.Problem) (*Evaluator, error) {
	if len(p.Workers) == 0 {
		return nil, errors.New("员工列表不能为空")
	}

	seen := make(map[string]bool, len(p.Workers))
	for _, worker := range p.Workers {
		if seen[worker] {
			return nil, fmt.Errorf("员工 %s 重复出现", worker)
		}
		seen[worker] = true
	}

	if len(p.ShiftPreferences) != len(p.Workers) {
		return nil, errors.New("班次偏好的数量和员工数量不匹配")
	}
	for i, preference := range p.ShiftPreferences {
		if len(preference) != shiftsPerDay {
			return nil, fmt.Errorf("员工 %s 的班次偏好必须包含 %d 项", p.Workers[i], shiftsPerDay)
		}
		for _, v := range preference {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("员工 %s 的班次偏好只能为 0 或 1", p.Workers[i])
			}
		}
	}

	if len(p.ShiftMin) != shiftsPerDay || len(p.ShiftMax) != shiftsPerDay {
		return nil, fmt.Errorf("班次人数上下限必须各包含 %d 项", shiftsPerDay)
	}
	for i := range p.ShiftMin {
		if p.ShiftMin[i] < 0 {
			return nil, fmt.Errorf("班次 %d 的最少值班人数不能为负数", i)
		}
		if p.ShiftMax[i] < p.ShiftMin[i] {
			return nil, fmt.Errorf("班次 %d 的最多值班人数不能小于最少值班人数", i)
		}
	}

	if p.MaxShiftsPerWeek <= 0 {
		return nil, errors.New("每周最大班次数必须为正数")
	}
	if p.Weeks <= 0 {
		return nil, errors.New("排班周数必须为正数")
	}
	if p.HardConstraintPenalty <= 0 {
		return nil, errors.New("硬约束惩罚系数必须为正数")
	}

	return &Evaluator{problem: copyProblem(p)}, nil
}

// copyProblem 深拷贝问题配置，防止调用方在创建打分器之后修改配置
func copyProblem(p *domain.Problem) *domain.Problem {
	cp := *p
	cp.Workers = append([]string{}, p.Workers...)
	cp.ShiftPreferences = make([][]int, len(p.ShiftPreferences))
	for i, preference := range p.ShiftPreferences {
		cp.ShiftPreferences[i] = append([]int{}, preference...)
	}
	cp.ShiftMin = append([]int{}, p.ShiftMin...)
	cp.ShiftMax = append([]int{}, p.ShiftMax...)
	return &cp
}

// Len 返回排班编码应有的长度
func (e *Evaluator) Len() int {
	return len(e.problem.Workers) * shiftsPerWeek * e.problem.Weeks
}

// Decompose 把整个排班编码按员工顺序切分为等长的连续片段
// 返回的切片与配置中的员工列表按下标对齐
func (e *Evaluator) Decompose(encoded []int) ([][]int, error) {
	if len(encoded) != e.Len() {
		return nil, fmt.Errorf("%w: 期望 %d, 实际 %d", domain.ErrInvalidRosterSize, e.Len(), len(encoded))
	}
	for i, v := range encoded {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: 位置 %d 的值为 %d", domain.ErrInvalidRosterValue, i, v)
		}
	}

	shiftsPerWorker := e.Len() / len(e.problem.Workers)
	schedules := make([][]int, len(e.problem.Workers))
	for i := range schedules {
		schedules[i] = encoded[i*shiftsPerWorker : (i+1)*shiftsPerWorker]
	}

	return schedules, nil
}

/**
 * Cost 计算整个排班编码的成本
 * cost = hardConstraintPenalty * 硬约束违反数 + 软约束违反数
 * 其中:
 * 		1. 硬约束包括连续值班、每周班次上限、每班人数上下限和夜班资质
 * 		2. 软约束只有班次偏好
 */
func (e *Evaluator) Cost(encoded []int) (int, error) {
	schedules, err := e.Decompose(encoded)
	if err != nil {
		return 0, err
	}

	consecutiveShiftViolations := e.CountConsecutiveShiftViolations(schedules)
	_, shiftsPerWeekViolations := e.CountShiftsPerWeekViolations(schedules)
	_, workersPerShiftViolations := e.CountWorkersPerShiftViolations(schedules)
	shiftPreferenceViolations := e.CountShiftPreferenceViolations(schedules)
	competenceViolations := e.CountCompetenceViolations(schedules)

	hardConstraintViolations := consecutiveShiftViolations + workersPerShiftViolations + shiftsPerWeekViolations + competenceViolations
	softConstraintViolations := shiftPreferenceViolations

	return e.problem.HardConstraintPenalty*hardConstraintViolations + softConstraintViolations, nil
}

// Describe 返回排班编码的完整诊断结果，包含每项约束的原始统计值
func (e *Evaluator) Describe(encoded []int) (*domain.EvaluationReport, error) {
	schedules, err := e.Decompose(encoded)
	if err != nil {
		return nil, err
	}

	report := &domain.EvaluationReport{
		Schedules: make([]domain.WorkerSchedule, len(schedules)),
	}
	for i, shifts := range schedules {
		report.Schedules[i] = domain.WorkerSchedule{
			Worker: e.problem.Workers[i],
			Shifts: append([]int{}, shifts...),
		}
	}

	report.ConsecutiveShiftViolations = e.CountConsecutiveShiftViolations(schedules)
	report.WeeklyShifts, report.ShiftsPerWeekViolations = e.CountShiftsPerWeekViolations(schedules)
	report.WorkersPerShift, report.WorkersPerShiftViolations = e.CountWorkersPerShiftViolations(schedules)
	report.ShiftPreferenceViolations = e.CountShiftPreferenceViolations(schedules)
	report.CompetenceViolations = e.CountCompetenceViolations(schedules)

	report.HardConstraintViolations = report.ConsecutiveShiftViolations +
		report.WorkersPerShiftViolations + report.ShiftsPerWeekViolations + report.CompetenceViolations
	report.SoftConstraintViolations = report.ShiftPreferenceViolations
	report.Cost = e.problem.HardConstraintPenalty*report.HardConstraintViolations + report.SoftConstraintViolations

	return report, nil
}
