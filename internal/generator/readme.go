package generator

import (
	"errors"
	"strings"
	"text/template"
)

// ErrEmptyRepoName is returned when a README is requested without a repository name.
var ErrEmptyRepoName = errors.New("repository name is required")

// ReadmeOptions fills the README template. Only Name is required.
type ReadmeOptions struct {
	Name       string
	Owner      string
	Author     string
	InstallCmd string
	UsageCmd   string
}

const readmeTemplate = `# {{.Name}}

## 📋 Description
A brief description of what this project does and who it's for.

## 🚀 Features
- Feature 1
- Feature 2
- Feature 3

## 🛠️ Installation

` + "```bash" + `
git clone https://github.com/{{.Owner}}/{{.Name}}.git
cd {{.Name}}
{{.InstallCmd}}
` + "```" + `

## 💻 Usage

` + "```bash" + `
{{.UsageCmd}}
` + "```" + `

## 🤝 Contributing
Contributions are welcome! Please feel free to submit a Pull Request.

## 📄 License
This project is licensed under the MIT License.

## 👨‍💻 Author
{{.Author}}
`

var readmeTmpl = template.Must(template.New("readme").Parse(readmeTemplate))

func (o ReadmeOptions) withDefaults() ReadmeOptions {
	o.Name = strings.TrimSpace(o.Name)
	if strings.TrimSpace(o.Owner) == "" {
		o.Owner = "username"
	}
	if strings.TrimSpace(o.InstallCmd) == "" {
		o.InstallCmd = "npm install"
	}
	if strings.TrimSpace(o.UsageCmd) == "" {
		o.UsageCmd = "npm start"
	}
	if strings.TrimSpace(o.Author) == "" {
		o.Author = "Your Name - [@yourusername](https://github.com/yourusername)"
	}
	return o
}

// RenderReadme renders the README skeleton for a repository.
func RenderReadme(opts ReadmeOptions) (string, error) {
	opts = opts.withDefaults()
	if opts.Name == "" {
		return "", ErrEmptyRepoName
	}
	var sb strings.Builder
	if err := readmeTmpl.Execute(&sb, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
