package guard_test

import (
	"errors"
	"sync"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClaimNotConstructed = errors.New("claim must be created via newClaim")

// claim mirrors how commands embed the guard.
type claim struct {
	jobID   string
	agentID string
	guard   guard.ConstructorGuard
}

func newClaim(jobID, agentID string) (claim, error) {
	if jobID == "" || agentID == "" {
		return claim{}, errors.New("job and agent are required")
	}
	return claim{jobID: jobID, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (c claim) Validate() error {
	return c.guard.Validate(errClaimNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		guard   guard.ConstructorGuard
		arg     error
		wantErr error
	}{
		{"constructed with custom error", guard.NewConstructorGuard(), errClaimNotConstructed, nil},
		{"constructed with nil error", guard.NewConstructorGuard(), nil, nil},
		{"zero value with custom error", guard.ConstructorGuard{}, errClaimNotConstructed, errClaimNotConstructed},
		{"zero value with nil error", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.arg)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	t.Run("constructor result validates", func(t *testing.T) {
		c, err := newClaim("job-1", "agent-1")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "job-1", c.jobID)
	})

	t.Run("struct literal fails", func(t *testing.T) {
		c := claim{jobID: "job-1", agentID: "agent-1"}

		require.ErrorIs(t, c.Validate(), errClaimNotConstructed)
	})

	t.Run("failed constructor returns an unusable value", func(t *testing.T) {
		c, err := newClaim("", "agent-1")

		require.Error(t, err)
		require.ErrorIs(t, c.Validate(), errClaimNotConstructed)
	})

	t.Run("copies keep the guard", func(t *testing.T) {
		c, err := newClaim("job-1", "agent-1")
		require.NoError(t, err)

		cp := c
		cp.agentID = "agent-2"

		require.NoError(t, cp.Validate())
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(errClaimNotConstructed))
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	for b.Loop() {
		_ = g.Validate(errClaimNotConstructed)
	}
}
