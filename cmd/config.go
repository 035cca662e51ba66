package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "gradeline"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName     = "output"
	verboseFlagName    = "verbose"
	specFlagName       = "spec"
	solutionFlagName   = "solution"
	submissionFlagName = "submission"
	workspaceFlagName  = "workspace"
	submitFlagName     = "submit"
	regressionFlagName = "regression-run"
	expectedFlagName   = "expected"

	specConfigKey       = "grading.spec"
	solutionConfigKey   = "grading.solution"
	submissionConfigKey = "grading.submission"
	workspaceConfigKey  = "grading.workspace"

	serviceURLKey         = "service.url"
	serviceTokenKey       = "service.token"
	serviceMaxAttemptsKey = "service.max_attempts"
	serviceBaseDelayKey   = "service.base_delay_ms"
	serviceTimeoutKey     = "service.timeout_seconds"

	repositoryKey = "submission.repository"
	shaKey        = "submission.sha"
	runIDKey      = "submission.run_id"
	runAttemptKey = "submission.run_attempt"

	defaultReportPath     = "gradeline-report.json"
	defaultSpecPath       = "grading.yaml"
	defaultSolutionDir    = "solution"
	defaultSubmissionDir  = "."
	defaultWorkspaceDir   = ".gradeline-workspace"
	defaultMaxAttempts    = 5
	defaultBaseDelay      = time.Second
	defaultServiceTimeout = time.Minute

	envPrefix = "GRADELINE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".gradeline.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportPath)
	viper.SetDefault(specConfigKey, defaultSpecPath)
	viper.SetDefault(solutionConfigKey, defaultSolutionDir)
	viper.SetDefault(submissionConfigKey, defaultSubmissionDir)
	viper.SetDefault(workspaceConfigKey, defaultWorkspaceDir)

	viper.SetDefault(serviceURLKey, "")
	viper.SetDefault(serviceTokenKey, "")
	viper.SetDefault(serviceMaxAttemptsKey, defaultMaxAttempts)
	viper.SetDefault(serviceBaseDelayKey, defaultBaseDelay.Milliseconds())
	viper.SetDefault(serviceTimeoutKey, int64(defaultServiceTimeout.Seconds()))

	// Submission identity falls back to the CI environment.
	bindEnv(repositoryKey, "GRADELINE_SUBMISSION_REPOSITORY", "GITHUB_REPOSITORY")
	bindEnv(shaKey, "GRADELINE_SUBMISSION_SHA", "GITHUB_SHA")
	bindEnv(runIDKey, "GRADELINE_SUBMISSION_RUN_ID", "GITHUB_RUN_ID")
	bindEnv(runAttemptKey, "GRADELINE_SUBMISSION_RUN_ATTEMPT", "GITHUB_RUN_ATTEMPT")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func bindEnv(key string, envs ...string) {
	input := append([]string{key}, envs...)
	if err := viper.BindEnv(input...); err != nil {
		panic(err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// serviceBaseDelay reads the retry base delay in milliseconds.
func serviceBaseDelay() time.Duration {
	ms := viper.GetInt64(serviceBaseDelayKey)
	if ms <= 0 {
		return defaultBaseDelay
	}

	return time.Duration(ms) * time.Millisecond
}

func serviceTimeout() time.Duration {
	seconds := viper.GetInt64(serviceTimeoutKey)
	if seconds <= 0 {
		return defaultServiceTimeout
	}

	return time.Duration(seconds) * time.Second
}
