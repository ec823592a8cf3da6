package roster

// CountConsecutiveShiftViolations 统计连续值班的次数
// 这里的“连续”指员工序列中相邻的两个位置都为 1，跨天和跨周的相邻位置
// 同样会被统计（例如某天的夜班和第二天的早班），而不是“连续几天上同一种班”
func (e *Evaluator) CountConsecutiveShiftViolations(schedules [][]int) int {
	violations := 0
	for _, shifts := range schedules {
		for k := 0; k+1 < len(shifts); k++ {
			if shifts[k] == 1 && shifts[k+1] == 1 {
				violations++
			}
		}
	}
	return violations
}

// CountShiftsPerWeekViolations 统计每周班次数超出上限的情况
// 第一个返回值是所有员工逐周的班次数（诊断用），第二个返回值是超出部分的总和
func (e *Evaluator) CountShiftsPerWeekViolations(schedules [][]int) ([]int, int) {
	violations := 0
	weeklyShifts := make([]int, 0, len(schedules)*e.problem.Weeks)

	for _, shifts := range schedules {
		for i := 0; i < e.problem.Weeks*shiftsPerWeek; i += shiftsPerWeek {
			weekly := 0
			for _, v := range shifts[i : i+shiftsPerWeek] {
				weekly += v
			}
			weeklyShifts = append(weeklyShifts, weekly)
			if weekly > e.problem.MaxShiftsPerWeek {
				violations += weekly - e.problem.MaxShiftsPerWeek
			}
		}
	}

	return weeklyShifts, violations
}

// CountWorkersPerShiftViolations 统计每个班次的值班人数不在上下限之内的情况
// 惩罚按超出或缺少的人数累计，第一个返回值是每个班次的值班总人数（诊断用）
func (e *Evaluator) CountWorkersPerShiftViolations(schedules [][]int) ([]int, int) {
	totalPerShift := make([]int, e.Len()/len(e.problem.Workers))
	for _, shifts := range schedules {
		for i, v := range shifts {
			totalPerShift[i] += v
		}
	}

	violations := 0
	for shiftIndex, numOfWorkers := range totalPerShift {
		dailyShiftIndex := shiftIndex % shiftsPerDay // 0、1、2 分别对应早、晚、夜班
		if numOfWorkers > e.problem.ShiftMax[dailyShiftIndex] {
			violations += numOfWorkers - e.problem.ShiftMax[dailyShiftIndex]
		} else if numOfWorkers < e.problem.ShiftMin[dailyShiftIndex] {
			violations += e.problem.ShiftMin[dailyShiftIndex] - numOfWorkers
		}
	}

	return totalPerShift, violations
}

// CountShiftPreferenceViolations 统计员工被安排到不接受的班次类型的次数
// 偏好向量按天平铺到整个排班周期上，这是唯一的软约束
func (e *Evaluator) CountShiftPreferenceViolations(schedules [][]int) int {
	violations := 0
	for workerIndex, shifts := range schedules {
		preference := e.problem.ShiftPreferences[workerIndex]
		for i, v := range shifts {
			if preference[i%shiftsPerDay] == 0 && v == 1 {
				violations++
			}
		}
	}
	return violations
}

// CountCompetenceViolations 统计不具备夜班资质的员工被安排夜班的次数
// 只检查每名员工序列前 competenceWindowEnd 个位置中的夜班
func (e *Evaluator) CountCompetenceViolations(schedules [][]int) int {
	violations := 0
	for workerIndex, shifts := range schedules {
		if workerIndex < seniorWorkerCount {
			continue
		}
		for i := nightShiftOffset; i < competenceWindowEnd && i < len(shifts); i += shiftsPerDay {
			if shifts[i] == 1 {
				violations++
			}
		}
	}
	return violations
}
