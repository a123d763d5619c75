package mocks

import (
	context "context"

	domain "github.com/renato0307/hackcheck/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockToolchainInstaller is a mock type for the ToolchainInstaller type
type MockToolchainInstaller struct {
	mock.Mock
}

type MockToolchainInstaller_Expecter struct {
	mock *mock.Mock
}

func (_m *MockToolchainInstaller) EXPECT() *MockToolchainInstaller_Expecter {
	return &MockToolchainInstaller_Expecter{mock: &_m.Mock}
}

// Install provides a mock function with given fields: ctx, version
func (_m *MockToolchainInstaller) Install(ctx context.Context, version domain.ToolchainVersion) error {
	ret := _m.Called(ctx, version)

	if len(ret) == 0 {
		panic("no return value specified for Install")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ToolchainVersion) error); ok {
		r0 = rf(ctx, version)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockToolchainInstaller_Install_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Install'
type MockToolchainInstaller_Install_Call struct {
	*mock.Call
}

// Install is a helper method to define mock.On call
//   - ctx context.Context
//   - version domain.ToolchainVersion
func (_e *MockToolchainInstaller_Expecter) Install(ctx interface{}, version interface{}) *MockToolchainInstaller_Install_Call {
	return &MockToolchainInstaller_Install_Call{Call: _e.mock.On("Install", ctx, version)}
}

func (_c *MockToolchainInstaller_Install_Call) Return(_a0 error) *MockToolchainInstaller_Install_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockToolchainInstaller_Install_Call) RunAndReturn(run func(context.Context, domain.ToolchainVersion) error) *MockToolchainInstaller_Install_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockToolchainInstaller creates a new instance of MockToolchainInstaller. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockToolchainInstaller(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockToolchainInstaller {
	mock := &MockToolchainInstaller{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
