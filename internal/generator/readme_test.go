package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReadme_Defaults(t *testing.T) {
	md, err := RenderReadme(ReadmeOptions{Name: "my-app"})
	require.NoError(t, err)

	assert.Contains(t, md, "# my-app\n")
	assert.Contains(t, md, "git clone https://github.com/username/my-app.git")
	assert.Contains(t, md, "cd my-app\nnpm install")
	assert.Contains(t, md, "```bash\nnpm start\n```")
	assert.Contains(t, md, "## 📄 License\nThis project is licensed under the MIT License.")
	assert.Contains(t, md, "Your Name - [@yourusername](https://github.com/yourusername)")
}

func TestRenderReadme_CustomValues(t *testing.T) {
	md, err := RenderReadme(ReadmeOptions{
		Name:       "  ghstats ",
		Owner:      "octocat",
		Author:     "Mona - [@octocat](https://github.com/octocat)",
		InstallCmd: "go build ./...",
		UsageCmd:   "ghstats stats https://github.com/octocat/hello-world",
	})
	require.NoError(t, err)

	assert.Contains(t, md, "# ghstats\n")
	assert.Contains(t, md, "git clone https://github.com/octocat/ghstats.git")
	assert.Contains(t, md, "go build ./...")
	assert.Contains(t, md, "ghstats stats https://github.com/octocat/hello-world")
	assert.Contains(t, md, "Mona - [@octocat](https://github.com/octocat)")
	assert.NotContains(t, md, "npm")
}

func TestRenderReadme_RequiresName(t *testing.T) {
	_, err := RenderReadme(ReadmeOptions{Name: "   "})
	assert.ErrorIs(t, err, ErrEmptyRepoName)
}
