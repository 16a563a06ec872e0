package maa

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/logging"
)

type mockScheduler struct {
	mock.Mock
}

func (m *mockScheduler) MaxPriority() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *mockScheduler) SetRoundRobin(priority int) error {
	return m.Called(priority).Error(0)
}

func TestClampPriority(t *testing.T) {
	tests := []struct {
		name        string
		requested   uint
		hostMax     int
		wantApplied int
		wantClamped bool
	}{
		{"zero", 0, 99, 0, false},
		{"within range", 50, 99, 50, false},
		{"at max", 99, 99, 99, false},
		{"above max", 100, 99, 99, true},
		{"far above max", 1 << 20, 99, 99, true},
		{"small host max", 10, 3, 3, true},
		{"negative host max", 5, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied, clamped := ClampPriority(tt.requested, tt.hostMax)
			if applied != tt.wantApplied || clamped != tt.wantClamped {
				t.Errorf("ClampPriority(%d, %d) = (%d, %v), want (%d, %v)",
					tt.requested, tt.hostMax, applied, clamped, tt.wantApplied, tt.wantClamped)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	g := Decide(120, 99, nil)
	if g.Denied() {
		t.Errorf("Decide(120, 99, nil).Denied() = true")
	}
	if g.Value() != 99 || !g.Clamped || g.Requested != 120 {
		t.Errorf("Decide(120, 99, nil) = %+v, want applied 99, clamped, requested 120", g)
	}

	g = Decide(10, 99, errors.ErrPermissionDenied)
	if !g.Denied() {
		t.Errorf("Decide with error: Denied() = false")
	}
	if g.Value() != PriorityFailed {
		t.Errorf("Value() = %d, want %d", g.Value(), PriorityFailed)
	}
	if g.Applied != 10 {
		t.Errorf("Applied = %d, want 10", g.Applied)
	}
}

func TestPriorityController_SetPriority(t *testing.T) {
	tests := []struct {
		name      string
		requested uint
		hostMax   int
		wantSet   int
		want      int
	}{
		{"within range", 20, 99, 20, 20},
		{"at max", 99, 99, 99, 99},
		{"clamped", 150, 99, 99, 99},
		{"zero", 0, 99, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockScheduler{}
			s.On("MaxPriority").Return(tt.hostMax, nil).Once()
			s.On("SetRoundRobin", tt.wantSet).Return(nil).Once()

			c := NewPriorityController(s, logging.ForTest(t))
			if got := c.SetPriority(tt.requested); got != tt.want {
				t.Errorf("SetPriority(%d) = %d, want %d", tt.requested, got, tt.want)
			}
			s.AssertExpectations(t)
		})
	}
}

func TestPriorityController_Denied(t *testing.T) {
	s := &mockScheduler{}
	s.On("MaxPriority").Return(99, nil).Once()
	s.On("SetRoundRobin", 50).Return(errors.Mark(errors.New("operation not permitted"), errors.ErrPermissionDenied)).Once()

	ini := NewInitializer(&countingProber{platform: IntelGalileoGen2}, WithLogger(logging.NewDiscard()))
	if r := ini.Init(); r != Success {
		t.Fatalf("Init() = %v, want Success", r)
	}

	c := NewPriorityController(s, logging.ForTest(t))
	g := c.Request(50)
	if !g.Denied() {
		t.Fatal("Request(50) not denied")
	}
	if !errors.Is(g.Err, errors.ErrPermissionDenied) {
		t.Errorf("Err = %v, want ErrPermissionDenied", g.Err)
	}
	if v := g.Value(); v != PriorityFailed || (v >= 0 && v <= 99) {
		t.Errorf("Value() = %d, want %d", v, PriorityFailed)
	}

	// Denial leaves platform state alone.
	if ini.State() != StateInitialized || ini.Platform() != IntelGalileoGen2 {
		t.Errorf("after denial: state %v platform %v", ini.State(), ini.Platform())
	}
	s.AssertExpectations(t)
}

func TestPriorityController_InvalidPriority(t *testing.T) {
	s := &mockScheduler{}
	s.On("MaxPriority").Return(99, nil).Once()
	s.On("SetRoundRobin", 0).Return(errors.Mark(errors.New("invalid argument"), errors.ErrInvalidPriority)).Once()

	g := NewPriorityController(s, logging.ForTest(t)).Request(0)
	if g.Value() != PriorityFailed {
		t.Errorf("Value() = %d, want %d", g.Value(), PriorityFailed)
	}
	if !errors.Is(g.Err, errors.ErrInvalidPriority) {
		t.Errorf("Err = %v, want ErrInvalidPriority", g.Err)
	}
	if errors.Is(g.Err, errors.ErrPermissionDenied) {
		t.Errorf("Err = %v, should not be ErrPermissionDenied", g.Err)
	}
	s.AssertExpectations(t)
}

func TestPriorityController_MaxUnavailable(t *testing.T) {
	s := &mockScheduler{}
	s.On("MaxPriority").Return(0, errors.ErrSchedulerUnsupported).Once()

	c := NewPriorityController(s, logging.ForTest(t))
	g := c.Request(10)
	if g.Value() != PriorityFailed {
		t.Errorf("Value() = %d, want %d", g.Value(), PriorityFailed)
	}
	if !errors.Is(g.Err, errors.ErrSchedulerUnsupported) {
		t.Errorf("Err = %v, want ErrSchedulerUnsupported", g.Err)
	}
	s.AssertNotCalled(t, "SetRoundRobin", mock.Anything)
}

func TestPriorityController_Concurrent(t *testing.T) {
	s := &mockScheduler{}
	s.On("MaxPriority").Return(99, nil)
	s.On("SetRoundRobin", mock.AnythingOfType("int")).Return(nil)

	c := NewPriorityController(s, logging.NewDiscard())

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(p uint) {
			defer wg.Done()
			if got := c.SetPriority(p); got != int(p) {
				t.Errorf("SetPriority(%d) = %d", p, got)
			}
		}(uint(i))
	}
	wg.Wait()
	s.AssertNumberOfCalls(t, "SetRoundRobin", 16)
}
