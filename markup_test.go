package dbsapi_test

import (
	"testing"

	"github.com/dbsapi/dbsapi"
	"github.com/stretchr/testify/assert"
)

func TestSiteMarkup(t *testing.T) {
	t.Parallel()

	m := dbsapi.NewSiteMarkup()

	t.Run("birthday container matches style substring", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.IsBirthdayContainer("width:100%;text-decoration: none;color:#000"))
		assert.False(t, m.IsBirthdayContainer("text-decoration:none;"))
	})

	t.Run("birthday labels match id suffixes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.IsBirthdayName("ctl00_cph123_DataList2_ctl00_name1Label"))
		assert.True(t, m.IsBirthdayClass("ctl00_cph123_DataList2_ctl00_Label3"))
		assert.True(t, m.IsBirthdaySection("ctl00_cph123_DataList2_ctl00_Label4"))
		assert.False(t, m.IsBirthdayName("name1Label_x"))
	})

	t.Run("house label matches id prefix", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.IsHouseLabel("ctl00_cph123_Label1"))
		assert.False(t, m.IsHouseLabel("ctl00_cph123_DataList2_ctl00_Label3"))
	})

	t.Run("event prefixes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.IsEventLink("/events-annual-day"))
		assert.False(t, m.IsEventLink("/events.aspx"))
		assert.True(t, m.IsEventImage("/imgs/events/1.jpg"))
		assert.False(t, m.IsEventImage("/imgs/logo.png"))
	})

	t.Run("link title matches id suffix", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.IsLinkTitle("ctl00_cph123_DataList1_ctl01_topic1Label"))
		assert.False(t, m.IsLinkTitle("ctl00_cph123_DataList1_ctl01_HyperLink1"))
	})
}
