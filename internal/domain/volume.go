package domain

import (
	"fmt"
	"math"
)

// tokenVolumes are the daily pools derived from usage.
type tokenVolumes struct {
	questions int64
	qna       int64
	report    int64
	daily     int64
	monthly   int64
}

// volumes derives the token pools, failing with ErrInvalidUsage when any
// intermediate product overflows int64.
func (u UsageParameters) volumes() (tokenVolumes, error) {
	var v tokenVolumes
	var perReport int64
	var ok bool

	v.questions, ok = mulInt64(u.UserCount, u.QuestionsPerUserPerDay)
	if ok {
		v.qna, ok = mulInt64(u.TokensPerQuestion, v.questions)
	}
	if ok {
		perReport, ok = mulInt64(u.QuestionsPerReport, u.TokensPerQuestion)
	}
	if ok {
		v.report, ok = mulInt64(perReport, u.ReportsPerDay)
	}
	if ok {
		v.daily, ok = addInt64(v.qna, v.report)
	}
	if ok {
		v.monthly, ok = mulInt64(v.daily, DaysPerMonth)
	}

	if !ok {
		return tokenVolumes{}, fmt.Errorf("%w: monthly token volume exceeds %d", ErrInvalidUsage, int64(math.MaxInt64))
	}
	return v, nil
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}
