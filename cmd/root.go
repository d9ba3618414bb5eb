package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pkeffect/antigravity-architect/internal/config"
	"github.com/pkeffect/antigravity-architect/internal/lock"
)

// SetupLogName is appended to inside every project architect touches.
const SetupLogName = "agent_setup.log"

var (
	flagVerbose bool

	cfg         *config.Config
	logger      = zap.NewNop()
	consoleCore zapcore.Core
	logFile     *os.File
)

var rootCmd = &cobra.Command{
	Use:          "architect",
	Short:        "Antigravity Architect: scaffold agent-ready projects",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Architect generates project skeletons wired for AI coding agents:
rules, workflows, skills and memory under .agent/, plus ignore files,
CI templates, licenses and editor settings.

A markdown brain dump can be assimilated into the agent layout, and
'architect doctor' keeps an existing project healthy.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
		return setupLogger()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
		if logFile != nil {
			_ = logFile.Close()
			logFile = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogger() error {
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		l, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
		}
		level = l
	}
	if flagVerbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	consoleCore = zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(errOut)), level)
	logger = zap.New(consoleCore)
	return nil
}

// attachProjectLog tees every later log entry into <dir>/agent_setup.log
// as JSON. The directory is created if needed.
func attachProjectLog(dir string) error {
	if consoleCore == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, SetupLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open setup log: %w", err)
	}
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(f), zapcore.DebugLevel)
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logger = zap.New(zapcore.NewTee(consoleCore, fileCore))
	return nil
}

// lockProject takes the per-project lock for a mutating run.
func lockProject(dir string) (func(), error) {
	return lock.Acquire(lock.Path(dir, cfg.AgentDir), 10*time.Second)
}

// checkGitAvailable returns a clear error if git is not found on PATH.
func checkGitAvailable() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is not installed or not on PATH\n" +
			"  Install git from https://git-scm.com and try again.")
	}
	return nil
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
