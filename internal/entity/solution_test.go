package entity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// The steps relation must carry ON DELETE CASCADE so removing a solution
// type can never strand child rows.
func TestSolutionStepsCascadeOnDelete(t *testing.T) {
	s, err := schema.Parse(&SolutionType{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := s.Relationships.Relations["Steps"]
	require.True(t, ok)

	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	require.Equal(t, "CASCADE", constraint.OnDelete)
}
