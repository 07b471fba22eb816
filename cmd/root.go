// Package cmd defines qq's command-line surface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qq/config"
	"qq/model"
	"qq/prompt"
	"qq/provider"
	"qq/session"
	"qq/storage"
)

var (
	generateFlag    bool
	modelFlag       string
	temperatureFlag float64
	streamFlag      bool
	envFlag         bool
	debugFlag       bool
	colorFlag       bool
	noHistoryFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "qq [flags] [query...]",
	Short: "CLI explainer and generator using LLMs",
	Long: `qq explains shell commands or generates them from natural-language
descriptions using an LLM.

Explain mode (default) streams an explanation of the given command.
Generate mode (-g) streams a candidate command and then prompts:
e(x)ec runs it in your shell, (e)dit opens the response in $EDITOR,
(r)etry asks for a new description, anything else quits.

Examples:
  qq "find . -type f -name '*.txt' -exec sed -i 's/foo/bar/g' {} +"
  qq -g find all python files modified in the last week`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command. Called by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&generateFlag, "generate", "g", false, "Generate a command based on a description")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Model to use for completion (default from settings)")
	rootCmd.Flags().Float64VarP(&temperatureFlag, "temperature", "t", 0.5, "Temperature for completion")
	rootCmd.Flags().BoolVar(&streamFlag, "stream", true, "Stream the output")
	rootCmd.Flags().BoolVar(&envFlag, "env", false, "Include environment information in command generation")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable debug mode for more verbose output")
	rootCmd.Flags().BoolVar(&colorFlag, "color", true, "Enable color output in the terminal")
	rootCmd.Flags().BoolVar(&noHistoryFlag, "no-history", false, "Skip writing the invocation history record")
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	query := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.InitDebugLog(cfg.DataDir(), debugFlag)

	colorOn := prompt.SupportsColor(colorFlag)
	color.NoColor = !colorOn

	modelName := modelFlag
	if modelName == "" {
		modelName = cfg.DefaultModel
	}
	temperature := temperatureFlag
	if !cmd.Flags().Changed("temperature") {
		temperature = cfg.Temperature
	}

	pc := providerConfig(modelName, cfg)
	p, err := provider.NewProvider(pc)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := preflight(ctx, p, pc.Type); err != nil {
		return err
	}

	var history *storage.History
	if generateFlag && !noHistoryFlag {
		history = openHistory(cfg.DataDir())
	}

	opts := model.Options{Temperature: temperature, Stream: streamFlag}
	ctrl := session.New(p, opts, history)

	if generateFlag {
		info := prompt.CollectSystemInfo(envFlag, colorFlag)
		systemPrompt := prompt.Imbue(prompt.GenerateTemplate, info)
		debugPrompt(systemPrompt)
		return ctrl.Generate(ctx, systemPrompt, query)
	}

	systemPrompt := prompt.Imbue(prompt.ExplainTemplate, prompt.ExplainSnapshot(colorFlag))
	debugPrompt(systemPrompt)
	return ctrl.Explain(ctx, systemPrompt, query)
}

// preflight checks that a local Ollama host is reachable before the
// session opens, so an unreachable daemon fails fast instead of
// mid-stream. Hosted backends report their own auth errors.
func preflight(ctx context.Context, p model.Provider, providerType provider.Type) error {
	if providerType != provider.TypeOllama {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("Ollama is not reachable: %w", err)
	}
	return nil
}

func providerConfig(modelName string, cfg *config.Config) provider.Config {
	pc := provider.Config{
		Type:  provider.TypeForModel(modelName),
		Model: modelName,
	}
	switch pc.Type {
	case provider.TypeAnthropic:
		pc.BaseURL = cfg.AnthropicBaseURL
		pc.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case provider.TypeOpenAI:
		pc.BaseURL = cfg.OpenAIBaseURL
		pc.APIKey = os.Getenv("OPENAI_API_KEY")
	case provider.TypeOllama:
		pc.BaseURL = cfg.OllamaHost
	}
	return pc
}

// openHistory degrades to no history when the directory cannot be
// created; a broken data dir should not block the session.
func openHistory(dataDir string) *storage.History {
	history, err := storage.NewHistory(dataDir)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("history disabled: %v", err)
		}
		return nil
	}
	return history
}

func debugPrompt(systemPrompt string) {
	if !debugFlag && !config.Debug {
		return
	}
	color.New(color.FgRed, color.Bold).Println("DEBUG: imbued system prompt")
	fmt.Println(systemPrompt)
}
