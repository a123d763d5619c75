package mocks

import mock "github.com/stretchr/testify/mock"

// MockEditorOpener is a mock type for the EditorOpener type
type MockEditorOpener struct {
	mock.Mock
}

type MockEditorOpener_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEditorOpener) EXPECT() *MockEditorOpener_Expecter {
	return &MockEditorOpener_Expecter{mock: &_m.Mock}
}

// Open provides a mock function with given fields: path, editor
func (_m *MockEditorOpener) Open(path string, editor string) error {
	ret := _m.Called(path, editor)

	if len(ret) == 0 {
		panic("no return value specified for Open")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string, string) error); ok {
		r0 = rf(path, editor)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEditorOpener_Open_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Open'
type MockEditorOpener_Open_Call struct {
	*mock.Call
}

// Open is a helper method to define mock.On call
//   - path string
//   - editor string
func (_e *MockEditorOpener_Expecter) Open(path interface{}, editor interface{}) *MockEditorOpener_Open_Call {
	return &MockEditorOpener_Open_Call{Call: _e.mock.On("Open", path, editor)}
}

func (_c *MockEditorOpener_Open_Call) Return(_a0 error) *MockEditorOpener_Open_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEditorOpener_Open_Call) RunAndReturn(run func(string, string) error) *MockEditorOpener_Open_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEditorOpener creates a new instance of MockEditorOpener. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEditorOpener(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEditorOpener {
	mock := &MockEditorOpener{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
