package mock_test

import (
	"testing"

	"github.com/dbsapi/dbsapi"
	"github.com/dbsapi/dbsapi/mock"
	"github.com/stretchr/testify/assert"
)

func TestMarkup_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ dbsapi.Markup = &mock.Markup{}
}

func TestMarkup_UnsetPredicatesNeverMatch(t *testing.T) {
	t.Parallel()

	m := &mock.Markup{
		IsHouseLabelFn: func(id string) bool { return id == "points" },
	}

	assert.True(t, m.IsHouseLabel("points"))
	assert.False(t, m.IsHouseLabel("other"))
	assert.False(t, m.IsBirthdayContainer("text-decoration: none;"))
	assert.False(t, m.IsEventLink("/events-x"))
}
