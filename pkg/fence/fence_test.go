package fence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = "---\ntitle: Hello\n---\n\n# Step 1\n\nRun this:\n\n```python\nprint('a')\n```\n\nThen:\n\n```bash\npython3 hello.py\n```\n\n```python\nimport os\n```\n"

func TestBlocksByMarker(t *testing.T) {
	doc := Parse([]byte(step))

	assert.Equal(t, []string{"print('a')\n", "import os\n"}, doc.Blocks("python"))
	assert.Equal(t, []string{"python3 hello.py\n"}, doc.Blocks("bash"))
	assert.Empty(t, doc.Blocks("shell"))
}

func TestBlocksMarkerIsExact(t *testing.T) {
	assert.Empty(t, Blocks([]byte(step), "py"))
	assert.Empty(t, Blocks([]byte(step), "Python"))
}

func TestFrontMatterIsNotScanned(t *testing.T) {
	doc := Parse([]byte(step))

	require.Len(t, doc.blocks, 3)
	for _, b := range doc.blocks {
		assert.NotContains(t, b.Body, "title:")
	}
	assert.Equal(t, "", doc.Code("yaml", ""))
}

func TestCodeJoinsAcrossMarkers(t *testing.T) {
	doc := Parse([]byte(step))
	assert.Equal(t, "python3 hello.py\n\nprint('a')\n\nimport os\n", doc.Code("bash", "python"))
	assert.Equal(t, "", doc.Code("go"))
}

func TestUnclosedFenceRunsToEnd(t *testing.T) {
	blocks := Blocks([]byte("intro\n\n```go\nfunc main() {}\n"), "go")
	assert.Equal(t, []string{"func main() {}\n"}, blocks)
}

func TestTildeFenceAndInfoString(t *testing.T) {
	src := "~~~cpp title=\"main.cpp\"\nint main() {}\n~~~\n"
	doc := Parse([]byte(src))

	require.Len(t, doc.blocks, 1)
	assert.Equal(t, "cpp", doc.blocks[0].Marker)
	assert.Equal(t, []string{"int main() {}\n"}, doc.Blocks("cpp"))
}

func TestFenceInsideListItem(t *testing.T) {
	src := "1. Create the file:\n\n   ```shell\n   touch a.txt\n   ```\n"
	assert.Equal(t, []string{"touch a.txt\n"}, Blocks([]byte(src), "shell"))
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, Blocks(nil, "python"))
	assert.Equal(t, "", Join(nil))
}
