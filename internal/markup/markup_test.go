package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<div class="live-box">
  <p class="wind"><a>北東<span class="value">3.4</span></a></p>
  <p class="temp"><a><span class="value">13.5</span>℃</a></p>
</div>
<ul class="list"><li>one</li><li>two</li><li>three</li></ul>
</body></html>`

func TestLocate(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	temp := doc.Locate(".live-box .temp a")
	require.NotNil(t, temp)
	assert.Equal(t, "13.5℃", temp.Text())

	assert.Nil(t, doc.Locate(".does-not-exist"))
}

func TestList(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	items := doc.List(".list li")
	require.Len(t, items, 3)
	assert.Equal(t, "one", items[0].Text())
	assert.Equal(t, "three", items[2].Text())

	assert.Empty(t, doc.List(".list p"))
}

func TestDirectText(t *testing.T) {
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	// The wind anchor mixes a direct compass label with a nested speed
	// value; only the direct text node counts.
	wind := doc.Locate(".wind a")
	require.NotNil(t, wind)
	assert.Equal(t, "北東", wind.DirectText())
	assert.Equal(t, "北東3.4", wind.Text())

	// The temp anchor has no direct text before the nested value.
	temp := doc.Locate(".temp a")
	require.NotNil(t, temp)
	assert.Equal(t, "℃", temp.DirectText())
}
