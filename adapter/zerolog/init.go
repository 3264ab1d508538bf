package zerologadapter

import (
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/trickstertwo/logprovider"
)

// envConfig is read with prefix LOGPROVIDER, e.g.
//
//	LOGPROVIDER_CONSOLE=true            pretty console output
//	LOGPROVIDER_CONSOLE_TIMEFORMAT=...  console time layout (default RFC3339Nano)
//	LOGPROVIDER_CALLER=true             include caller
//	LOGPROVIDER_CALLER_SKIP=<int>       frames to skip (default 6, DefaultCallerSkip)
type envConfig struct {
	Console           bool   `envconfig:"CONSOLE"`
	ConsoleTimeFormat string `envconfig:"CONSOLE_TIMEFORMAT"`
	Caller            bool   `envconfig:"CALLER"`
	CallerSkip        int    `default:"6" envconfig:"CALLER_SKIP"`
}

func loadEnv() (envConfig, error) {
	var c envConfig
	if err := envconfig.Process("LOGPROVIDER", &c); err != nil {
		return envConfig{}, err
	}
	return c, nil
}

// Register zerolog as the receiver behind logprovider.Default()/Init().
func init() {
	logprovider.RegisterDefaultReceiverFactory(func(w io.Writer) logprovider.ReceiveFunc {
		if w == nil {
			w = os.Stdout
		}
		env, err := loadEnv()
		if err != nil {
			// Malformed env falls back to plain JSON.
			fmt.Fprintf(os.Stderr, "logprovider: %v\n", err)
			env = envConfig{}
		}
		cfg := Config{
			Writer:            w,
			Console:           env.Console,
			ConsoleTimeFormat: env.ConsoleTimeFormat,
			Caller:            env.Caller,
			CallerSkip:        env.CallerSkip,
		}
		return New(cfg.Logger()).Receive
	})
}
