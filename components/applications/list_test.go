package applications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_CVHref(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Row{}.CVHref())
	assert.Equal(t, "/applications/cv/cvs/u1.pdf", Row{CVKey: "cvs/u1.pdf"}.CVHref())
	assert.Equal(t, "/applications/cv/cvs/my%20cv.pdf", Row{CVKey: "cvs/my cv.pdf"}.CVHref())
}
