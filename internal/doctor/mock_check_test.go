package doctor

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCheck is a testify mock of Check with mockery-style expecters.
type MockCheck struct {
	mock.Mock
}

// NewMockCheck creates a MockCheck whose expectations are asserted at
// test cleanup.
func NewMockCheck(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheck {
	m := &MockCheck{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCheck) Name() string {
	return m.Called().String(0)
}

func (m *MockCheck) Category() string {
	return m.Called().String(0)
}

func (m *MockCheck) Run(ctx context.Context) *CheckResult {
	ret := m.Called(ctx)
	if r, ok := ret.Get(0).(*CheckResult); ok {
		return r
	}
	return nil
}

// MockCheckExpecter records expectations on a MockCheck.
type MockCheckExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for m.
func (m *MockCheck) EXPECT() *MockCheckExpecter {
	return &MockCheckExpecter{mock: &m.Mock}
}

// MockCheckStringCall is an expectation returning a string.
type MockCheckStringCall struct {
	*mock.Call
}

func (c *MockCheckStringCall) Return(s string) *MockCheckStringCall {
	c.Call.Return(s)
	return c
}

func (c *MockCheckStringCall) Maybe() *MockCheckStringCall {
	c.Call.Maybe()
	return c
}

// MockCheckRunCall is an expectation on Run.
type MockCheckRunCall struct {
	*mock.Call
}

func (c *MockCheckRunCall) Return(r *CheckResult) *MockCheckRunCall {
	c.Call.Return(r)
	return c
}

func (c *MockCheckRunCall) Run(fn func()) *MockCheckRunCall {
	c.Call.Run(func(mock.Arguments) { fn() })
	return c
}

func (e *MockCheckExpecter) Name() *MockCheckStringCall {
	return &MockCheckStringCall{Call: e.mock.On("Name")}
}

func (e *MockCheckExpecter) Category() *MockCheckStringCall {
	return &MockCheckStringCall{Call: e.mock.On("Category")}
}

func (e *MockCheckExpecter) Run(ctx any) *MockCheckRunCall {
	return &MockCheckRunCall{Call: e.mock.On("Run", ctx)}
}
