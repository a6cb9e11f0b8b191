package view_test

import (
	"testing"

	choreDto "choreboard/internal/domains/chore/model/dto"
	listDto "choreboard/internal/domains/list/model/dto"
	"choreboard/shared/validator"
	"choreboard/transport/http/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	renderer := view.New()

	overview := listDto.OverviewResponse{
		UserName: "Sam",
		Lists: []listDto.ListWithChoresResponse{{
			ListID: 1, ListName: "Kitchen",
			Chores: []choreDto.ChoreDetailResponse{{ChoreID: 1, ChoreName: "Dishes", IsCompleted: true}, {ChoreID: 2, ChoreName: "Mop"}},
		}},
		Chores: []choreDto.ChoreDetailResponse{{ChoreID: 1, ChoreName: "Dishes"}, {ChoreID: 2, ChoreName: "Mop"}},
	}

	t.Run("plain page hides the modal", func(t *testing.T) {
		html, err := renderer.Dashboard(view.Dashboard{Overview: overview})
		require.NoError(t, err)

		page := string(html)
		assert.Contains(t, page, "Sam")
		assert.Contains(t, page, "Kitchen")
		assert.Contains(t, page, "1/2")
		assert.Contains(t, page, `class="modal hidden"`)
	})

	t.Run("validation errors are listed with the rejected input", func(t *testing.T) {
		html, err := renderer.Dashboard(view.Dashboard{
			Overview: overview,
			Rejected: &choreDto.CreateChoreRequest{ChoreName: "<b>x</b>", Value: "abc"},
			Errors:   validator.Errors{choreDto.MsgValueNotInteger},
		})
		require.NoError(t, err)

		page := string(html)
		assert.Contains(t, page, "Value must be an integer.")
		assert.Contains(t, page, `value="abc"`)
		assert.Contains(t, page, "&lt;b&gt;x&lt;/b&gt;")
		assert.NotContains(t, page, `class="modal hidden"`)
	})
}
