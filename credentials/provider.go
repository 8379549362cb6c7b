package credentials

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Environment variables read by EnvProvider.
const (
	EnvAPIID   = "JTOOLS_API_ID"
	EnvAPIHash = "JTOOLS_API_HASH"
)

// Provider supplies credentials when none are stored yet.
type Provider interface {
	Obtain(ctx context.Context) (Credentials, error)
}

// PromptProvider asks for credentials on a terminal.
type PromptProvider struct {
	In  io.Reader
	Out io.Writer
}

// NewPromptProvider creates a PromptProvider on stdin and stdout.
func NewPromptProvider() *PromptProvider {
	return &PromptProvider{In: os.Stdin, Out: os.Stdout}
}

// Obtain prompts for the API id and then the API hash.
func (p *PromptProvider) Obtain(ctx context.Context) (Credentials, error) {
	reader := bufio.NewReader(p.In)

	idText, err := p.ask(ctx, reader, "Enter Telegram API ID: ")
	if err != nil {
		return Credentials{}, err
	}
	id, err := ParseAPIID(idText)
	if err != nil {
		return Credentials{}, err
	}

	hash, err := p.ask(ctx, reader, "Enter Telegram API hash: ")
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{APIID: id, APIHash: hash}, nil
}

func (p *PromptProvider) ask(ctx context.Context, reader *bufio.Reader, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.Out, prompt)

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}

// StaticProvider returns fixed credentials.
type StaticProvider struct {
	Credentials Credentials
}

// Obtain returns the fixed credentials.
func (p StaticProvider) Obtain(context.Context) (Credentials, error) {
	return p.Credentials, nil
}

// EnvProvider returns a StaticProvider built from JTOOLS_API_ID and
// JTOOLS_API_HASH. ok is false when either variable is unset.
func EnvProvider() (p StaticProvider, ok bool, err error) {
	idText, hash := os.Getenv(EnvAPIID), os.Getenv(EnvAPIHash)
	if idText == "" || hash == "" {
		return StaticProvider{}, false, nil
	}
	id, err := ParseAPIID(idText)
	if err != nil {
		return StaticProvider{}, false, errors.Wrap(err, EnvAPIID)
	}
	return StaticProvider{Credentials: Credentials{APIID: id, APIHash: hash}}, true, nil
}
