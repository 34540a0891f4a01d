// SPDX-License-Identifier: MIT

package selfcheck_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mezgou/lin-alg-lib/internal/selfcheck"
	"github.com/Mezgou/lin-alg-lib/sparse"
)

func TestRunDefault_AllStrategies(t *testing.T) {
	t.Parallel()

	for _, s := range []sparse.DetStrategy{sparse.DetAuto, sparse.DetCofactor, sparse.DetParallel, sparse.DetLU} {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			rep := selfcheck.RunDefault(sparse.WithDeterminantStrategy(s))
			for _, res := range rep.Results {
				require.NoError(t, res.Err, res.Name)
			}
			require.True(t, rep.OK())
			require.Equal(t, 8, rep.Total())
			require.Equal(t, 8, rep.Passed())
		})
	}
}

func TestRun_FailuresAndPanics(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rep := selfcheck.Run([]selfcheck.Check{
		{Name: "ok", Run: func(...sparse.Option) error { return nil }},
		{Name: "fails", Run: func(...sparse.Option) error { return boom }},
		{Name: "panics", Run: func(...sparse.Option) error { panic("kaboom") }},
	})
	require.False(t, rep.OK())
	require.Equal(t, 3, rep.Total())
	require.Equal(t, 2, rep.Failures())
	require.ErrorIs(t, rep.Results[1].Err, boom)
	require.ErrorContains(t, rep.Results[2].Err, "kaboom")

	var buf bytes.Buffer
	_, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Total tests: 3\n")
	require.Contains(t, buf.String(), "Successful: 1\n")
	require.Contains(t, buf.String(), "Failed: 2\n")
	require.Contains(t, buf.String(), "  fails: boom\n")
}

func TestReport_AllPassed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := selfcheck.RunDefault().WriteTo(&buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Suite: MatrixTests\n")
	require.Contains(t, buf.String(), "All tests have been successfully passed!\n")
}
