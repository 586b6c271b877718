package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-eml/addr"
	"github.com/zostay/go-eml/internal/config"
	"github.com/zostay/go-eml/internal/version"
	"github.com/zostay/go-eml/message"
)

// options collects the flag values for one run.
type options struct {
	to       []string
	from     string
	subject  string
	cc       []string
	text     string
	html     string
	textFile string
	htmlFile string
	attach   []string
	output   string
	headers  []string
	date     string
	charset  string
	config   string
}

const example = `  eml-generator -t "recipient@example.com" --text "Hello World" -o email.eml
  eml-generator -t "one@ex.com,two@ex.com" -f "me@ex.com" -s "Test" --text-file content.txt
  eml-generator -t "Jane Doe <jane@ex.com>" --html-file page.html -a report.pdf,logo.png`

// New returns the eml-generator command.
func New() *cobra.Command {
	o := &options{}

	c := &cobra.Command{
		Use:           "eml-generator",
		Short:         "Generate EML (email) files from the command line",
		Example:       example,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}

	c.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	fs := c.Flags()
	fs.StringArrayVarP(&o.to, "to", "t", nil, "recipient email(s), comma separated (required)")
	fs.StringVarP(&o.from, "from", "f", "", "sender email")
	fs.StringVarP(&o.subject, "subject", "s", "", "email subject")
	fs.StringArrayVarP(&o.cc, "cc", "c", nil, "CC email(s), comma separated")
	fs.StringVar(&o.text, "text", "", "plain text content")
	fs.StringVar(&o.html, "html", "", "HTML content")
	fs.StringVar(&o.textFile, "text-file", "", "plain text content from file")
	fs.StringVar(&o.htmlFile, "html-file", "", "HTML content from file")
	fs.StringArrayVarP(&o.attach, "attach", "a", nil, "file attachments, comma separated")
	fs.StringVarP(&o.output, "output", "o", "", "output EML file (default \""+config.DefaultOutput+"\")")
	fs.StringArrayVar(&o.headers, "header", nil, "custom header as key:value (may be repeated)")
	fs.StringVar(&o.date, "date", "", "value for the Date header, in almost any date format")
	fs.StringVar(&o.charset, "charset", "", "charset of --text-file and --html-file (default UTF-8)")
	fs.StringVar(&o.config, "config", "", "YAML file with default settings")

	return c
}

// Execute runs the eml-generator command with the process arguments.
func Execute() error {
	return New().Execute()
}

func run(cmd *cobra.Command, o *options) error {
	if len(o.to) == 0 {
		return ErrMissingTo
	}

	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}

	req, err := buildRequest(o, cfg)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	msg, err := message.Generate(req, message.WithLogger(logger))
	if err != nil {
		return err
	}

	out := o.output
	if out == "" {
		out = cfg.Output
	}

	if err := os.WriteFile(out, []byte(msg), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "EML file generated: %s\n", out)
	return nil
}

// buildRequest maps the configuration and flags onto a message.Request. Flags
// win over the configuration.
func buildRequest(o *options, cfg *config.Config) (*message.Request, error) {
	req := &message.Request{
		To: addressList(o.to),
	}

	var err error

	for _, h := range cfg.Headers {
		req.Headers.Set(h.Name, h.Value)
	}

	seen := map[string]bool{}
	for _, hv := range o.headers {
		var name, value string
		name, value, err = parseHeader(hv)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			req.Headers.Add(name, value)
			continue
		}
		seen[name] = true
		req.Headers.Set(name, value)
	}

	if o.date != "" {
		if err := setDate(&req.Headers, o.date); err != nil {
			return nil, err
		}
	}

	from := o.from
	if from == "" {
		from = cfg.From
	}
	req.From = addr.ParseList(from)

	if len(o.cc) > 0 {
		req.Cc = addressList(o.cc)
	} else {
		req.Cc = addressList(cfg.Cc)
	}

	if o.subject != "" {
		req.SetSubject(o.subject)
	}

	cs := o.charset
	if cs == "" {
		cs = cfg.Charset
	}

	req.Text, err = readBody(o.text, o.textFile, cs)
	if err != nil {
		return nil, err
	}

	req.HTML, err = readBody(o.html, o.htmlFile, cs)
	if err != nil {
		return nil, err
	}

	for _, path := range splitList(o.attach) {
		var a message.Attachment
		a, err = readAttachment(path)
		if err != nil {
			return nil, err
		}
		req.Attachments = append(req.Attachments, a)
	}

	return req, nil
}
