package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv. A .env file in the working
// directory is loaded into the environment by main before config loading.
const (
	EnvConfig      = "JTOOLS_CONFIG"
	EnvFFmpeg      = "JTOOLS_FFMPEG"
	EnvFFprobe     = "JTOOLS_FFPROBE"
	EnvUploader    = "JTOOLS_UPLOADER"
	EnvWhoAmI      = "JTOOLS_WHOAMI"
	EnvCredentials = "JTOOLS_CREDENTIALS_FILE"
	EnvSession     = "JTOOLS_SESSION_FILE"
	EnvLogFile     = "JTOOLS_LOG_FILE"
	EnvUploadArgs  = "JTOOLS_UPLOAD_ARGS"
	EnvOverwrite   = "JTOOLS_OVERWRITE"
	EnvVerbose     = "JTOOLS_VERBOSE"
	EnvDryRun      = "JTOOLS_DRY_RUN"
)

// ApplyEnv overrides config values from the environment.
func (c *Config) ApplyEnv() {
	setString(&c.Tools.FFmpeg, EnvFFmpeg)
	setString(&c.Tools.FFprobe, EnvFFprobe)
	setString(&c.Tools.Uploader, EnvUploader)
	setString(&c.Tools.WhoAmI, EnvWhoAmI)
	setString(&c.CredentialsFile, EnvCredentials)
	setString(&c.SessionFile, EnvSession)
	setString(&c.LogFile, EnvLogFile)

	if v := os.Getenv(EnvUploadArgs); v != "" {
		c.Upload.ExtraArgs = strings.Fields(v)
	}

	setBool(&c.Overwrite, EnvOverwrite)
	setBool(&c.Verbose, EnvVerbose)
	setBool(&c.DryRun, EnvDryRun)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// setBool ignores values strconv.ParseBool does not understand.
func setBool(dst *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}
