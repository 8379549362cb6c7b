// Package session answers "who am I" for the messaging account jtools
// uploads to.
//
// Logging in and keeping the session file are delegated to an external
// identity helper, the same way uploads are delegated to telegram-upload.
// The helper receives the API credentials and session path through its
// environment and prints the signed-in account as one JSON object.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"jtools/credentials"
	"jtools/runner"
)

// DefaultBinary is the identity helper looked up in PATH.
const DefaultBinary = "jtools-whoami"

// Environment passed to the identity helper.
const (
	EnvAPIID   = "TG_API_ID"
	EnvAPIHash = "TG_API_HASH"
	EnvSession = "TG_SESSION"
)

// Identity is the signed-in messaging account.
type Identity struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Name joins first and last name.
func (i Identity) Name() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// Lines renders the identity for display, omitting empty fields.
func (i Identity) Lines() []string {
	lines := []string{"id: " + strconv.FormatInt(i.ID, 10)}
	if i.Username != "" {
		lines = append(lines, "username: @"+strings.TrimPrefix(i.Username, "@"))
	}
	if name := i.Name(); name != "" {
		lines = append(lines, "name: "+name)
	}
	return lines
}

// Resolver looks up the signed-in identity.
type Resolver interface {
	WhoAmI(ctx context.Context, creds credentials.Credentials) (Identity, error)
}

// CommandResolver runs the identity helper through a runner.Runner.
type CommandResolver struct {
	binary      string
	sessionFile string
	run         runner.Runner
	logger      hclog.Logger
}

// NewCommandResolver creates a CommandResolver. An empty binary means DefaultBinary.
func NewCommandResolver(r runner.Runner, binary, sessionFile string, logger hclog.Logger) *CommandResolver {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &CommandResolver{binary: binary, sessionFile: sessionFile, run: r, logger: logger}
}

// Cmd returns the helper invocation for creds.
func (c *CommandResolver) Cmd(creds credentials.Credentials) runner.Cmd {
	return runner.Cmd{
		Name: c.binary,
		Env: []string{
			EnvAPIID + "=" + strconv.FormatInt(creds.APIID, 10),
			EnvAPIHash + "=" + creds.APIHash,
			EnvSession + "=" + c.sessionFile,
		},
		Capture: true,
	}
}

// WhoAmI implements Resolver.
func (c *CommandResolver) WhoAmI(ctx context.Context, creds credentials.Credentials) (Identity, error) {
	res := c.run.Run(ctx, c.Cmd(creds))
	if !res.OK() {
		err := res.Err
		if err == nil {
			err = errors.Errorf("exit status %d", res.ExitCode)
		}
		if msg := strings.TrimSpace(res.Stderr); msg != "" {
			err = errors.Wrap(err, msg)
		}
		return Identity{}, errors.Wrapf(err, "%s failed", c.binary)
	}

	id, err := ParseIdentity(res.Stdout)
	if err != nil {
		return Identity{}, errors.Wrapf(err, "%s returned unexpected output", c.binary)
	}

	c.logger.Debug("resolved identity", "id", id.ID)
	return id, nil
}

// ParseIdentity decodes the helper's JSON output.
func ParseIdentity(out string) (Identity, error) {
	var id Identity
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &id); err != nil {
		return Identity{}, errors.Wrap(err, "failed to parse identity")
	}
	if id.ID == 0 {
		return Identity{}, fmt.Errorf("identity has no id")
	}
	return id, nil
}
