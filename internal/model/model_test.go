package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestExternalIDColumnsAreUnbounded(t *testing.T) {
	cases := []struct {
		model  any
		fields []string
	}{
		{&Test{}, []string{"JobID", "CompanyID"}},
		{&TestResult{}, []string{"JobID", "UserID"}},
		{&Interview{}, []string{"JobID", "CompanyID"}},
		{&Application{}, []string{"JobID"}},
		{&QualificationTask{}, []string{"JobID", "UserID"}},
	}
	for _, tc := range cases {
		s, err := schema.Parse(tc.model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		for _, name := range tc.fields {
			field := s.LookUpField(name)
			require.NotNil(t, field, "%s.%s", s.Name, name)
			assert.Zero(t, field.Size, "%s.%s", s.Name, name)
			if typ, ok := field.TagSettings["TYPE"]; ok {
				assert.Equal(t, "text", typ, "%s.%s", s.Name, name)
			}
		}
	}
}
