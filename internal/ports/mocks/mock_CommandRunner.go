package mocks

import (
	context "context"

	domain "github.com/renato0307/hackcheck/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockCommandRunner is a mock type for the CommandRunner type
type MockCommandRunner struct {
	mock.Mock
}

type MockCommandRunner_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommandRunner) EXPECT() *MockCommandRunner_Expecter {
	return &MockCommandRunner_Expecter{mock: &_m.Mock}
}

// Run provides a mock function with given fields: ctx, inv, dir
func (_m *MockCommandRunner) Run(ctx context.Context, inv domain.Invocation, dir string) (domain.CapturedOutput, error) {
	ret := _m.Called(ctx, inv, dir)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	var r0 domain.CapturedOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Invocation, string) (domain.CapturedOutput, error)); ok {
		return rf(ctx, inv, dir)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.Invocation, string) domain.CapturedOutput); ok {
		r0 = rf(ctx, inv, dir)
	} else {
		r0 = ret.Get(0).(domain.CapturedOutput)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.Invocation, string) error); ok {
		r1 = rf(ctx, inv, dir)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCommandRunner_Run_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Run'
type MockCommandRunner_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
//   - ctx context.Context
//   - inv domain.Invocation
//   - dir string
func (_e *MockCommandRunner_Expecter) Run(ctx interface{}, inv interface{}, dir interface{}) *MockCommandRunner_Run_Call {
	return &MockCommandRunner_Run_Call{Call: _e.mock.On("Run", ctx, inv, dir)}
}

func (_c *MockCommandRunner_Run_Call) Return(_a0 domain.CapturedOutput, _a1 error) *MockCommandRunner_Run_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCommandRunner_Run_Call) RunAndReturn(run func(context.Context, domain.Invocation, string) (domain.CapturedOutput, error)) *MockCommandRunner_Run_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCommandRunner creates a new instance of MockCommandRunner. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCommandRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommandRunner {
	mock := &MockCommandRunner{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
