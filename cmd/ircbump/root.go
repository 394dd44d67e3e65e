package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"charm.land/log/v2"
	"github.com/bengarrett/ircbump"
	"github.com/ergochat/irc-go/ircfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is resolved from flags, IRCBUMP_* environment variables and the config file, in that order.
type config struct {
	Links   bool
	Charset string
	Page    bool
	Escaped bool
	Strip   bool
	Verbose bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "ircbump [file...]",
		Short: "Convert IRC formatted text to HTML",
		Long: `Convert IRC formatting codes (bold, underline, colors, reverse and reset)
into a balanced HTML fragment. Files are read in turn, or standard input when
no file or "-" is given.`,
		Example: `
# Convert a log file and create links
ircbump --links channel.log > channel.html

# Read a Windows-1252 log and wrap it in a colored div
ircbump -c cp1252 --page old.log

# Type formatting with $b, $u, $c[red] and $r escapes
echo '$bhello$b $c[red]world' | ircbump --escaped

# Only remove the formatting codes
ircbump --strip channel.log
  `,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config{
				Links:   v.GetBool("links"),
				Charset: v.GetString("charset"),
				Page:    v.GetBool("page"),
				Escaped: v.GetBool("escaped"),
				Strip:   v.GetBool("strip"),
				Verbose: v.GetBool("verbose"),
			}
			return run(cmd, args, cfg, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
		},
	}
	cmd.Flags().BoolP("links", "l", false, "wrap http, https and ftp URLs in anchors")
	cmd.Flags().StringP("charset", "c", "utf-8", "charset of the input, such as latin1, cp1252 or cp437")
	cmd.Flags().BoolP("page", "p", false, "wrap the output in a div using the default colors")
	cmd.Flags().BoolP("escaped", "e", false, "read $b $u $v $r $c[color] escapes instead of control codes")
	cmd.Flags().BoolP("strip", "s", false, "write the text without formatting instead of HTML")
	cmd.Flags().BoolP("verbose", "v", false, "log to standard error")
	cmd.Flags().String("config", "", "config file (yaml, toml or json)")
	return cmd
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	v.SetEnvPrefix("ircbump")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	l := log.New(w)
	l.SetLevel(log.DebugLevel)
	return slog.New(l)
}

func run(cmd *cobra.Command, args []string, cfg config, logger *slog.Logger) error {
	charset, err := ircbump.Charset(cfg.Charset)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := cmd.OutOrStdout()
	for _, name := range args {
		raw, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		logger.Debug("read input", "source", name, "bytes", len(raw), "charset", charset.String())
		if cfg.Escaped {
			// escapes are ASCII, so unescaping before decoding is safe for every charset
			raw = ircfmt.Unescape(raw)
		}
		d := ircbump.NewDecoder(cfg.Links, charset)
		if err := d.Read(strings.NewReader(raw)); err != nil {
			return fmt.Errorf("convert %s: %w", name, err)
		}
		if err := write(out, d, cfg); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		logger.Debug("converted", "source", name, "html", len(d.Fragment()))
	}
	return nil
}

func readInput(stdin io.Reader, name string) (string, error) {
	if name == "-" {
		p, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(p), nil
	}
	p, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(p), nil
}

func write(w io.Writer, d *ircbump.Decoder, cfg config) error {
	var err error
	switch {
	case cfg.Strip:
		_, err = io.WriteString(w, d.Plain())
	case cfg.Page:
		err = d.Write(w)
	default:
		_, err = io.WriteString(w, d.Fragment())
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
