package mocks

import (
	domain "github.com/renato0307/hackcheck/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockFixtureMaterializer is a mock type for the FixtureMaterializer type
type MockFixtureMaterializer struct {
	mock.Mock
}

type MockFixtureMaterializer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFixtureMaterializer) EXPECT() *MockFixtureMaterializer_Expecter {
	return &MockFixtureMaterializer_Expecter{mock: &_m.Mock}
}

// Materialize provides a mock function with given fields: modelID
func (_m *MockFixtureMaterializer) Materialize(modelID string) (*domain.MaterializedProject, error) {
	ret := _m.Called(modelID)

	if len(ret) == 0 {
		panic("no return value specified for Materialize")
	}

	var r0 *domain.MaterializedProject
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*domain.MaterializedProject, error)); ok {
		return rf(modelID)
	}
	if rf, ok := ret.Get(0).(func(string) *domain.MaterializedProject); ok {
		r0 = rf(modelID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.MaterializedProject)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(modelID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFixtureMaterializer_Materialize_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Materialize'
type MockFixtureMaterializer_Materialize_Call struct {
	*mock.Call
}

// Materialize is a helper method to define mock.On call
//   - modelID string
func (_e *MockFixtureMaterializer_Expecter) Materialize(modelID interface{}) *MockFixtureMaterializer_Materialize_Call {
	return &MockFixtureMaterializer_Materialize_Call{Call: _e.mock.On("Materialize", modelID)}
}

func (_c *MockFixtureMaterializer_Materialize_Call) Return(_a0 *domain.MaterializedProject, _a1 error) *MockFixtureMaterializer_Materialize_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFixtureMaterializer_Materialize_Call) RunAndReturn(run func(string) (*domain.MaterializedProject, error)) *MockFixtureMaterializer_Materialize_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockFixtureMaterializer creates a new instance of MockFixtureMaterializer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFixtureMaterializer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFixtureMaterializer {
	mock := &MockFixtureMaterializer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
