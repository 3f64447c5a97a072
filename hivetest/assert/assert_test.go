package assert

import (
	"testing"

	"github.com/beehive-network/beehive/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrEmpty,
			WantFail: false,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"both nil": {
			ErrWant:  nil,
			ErrGot:   nil,
			WantFail: false,
		},
		"wrapped": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrEmpty, "test"),
			WantFail: false,
		},
		"different kind": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrState, "test"),
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.ErrWant, tc.ErrGot)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestBasicAssertions(t *testing.T) {
	var nilSlice []byte
	cases := map[string]struct {
		check    func(Tester)
		WantFail bool
	}{
		"nil interface":  {check: func(t Tester) { Nil(t, nil) }},
		"typed nil":      {check: func(t Tester) { Nil(t, nilSlice) }},
		"not nil":        {check: func(t Tester) { Nil(t, 5) }, WantFail: true},
		"equal":          {check: func(t Tester) { Equal(t, []int{1}, []int{1}) }},
		"not equal":      {check: func(t Tester) { Equal(t, 1, uint64(1)) }, WantFail: true},
		"panics":         {check: func(t Tester) { Panics(t, func() { panic("boom") }) }},
		"does not panic": {check: func(t Tester) { Panics(t, func() {}) }, WantFail: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			tc.check(mock)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

// tmock mocks testing.TB and only counts failure calls. It ignores all other
// input.
type tmock struct {
	testing.TB
	failcalls int
}

func (t *tmock) Fatal(args ...interface{}) {
	t.TB.Log(args...)
	t.failcalls++
}

func (t *tmock) Fatalf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}
