package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	apiconfig "quiebre/pkg/api/config"
	"quiebre/pkg/api/conocimiento"
	"quiebre/pkg/api/generar"
	"quiebre/pkg/core/agent"
	"quiebre/pkg/core/area"
	"quiebre/pkg/core/compose"
	"quiebre/pkg/core/ideation"
	"quiebre/pkg/core/knowledge"
	"quiebre/pkg/core/prompt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

func main() {
	// Load environment variables
	godotenv.Load()

	ctx := context.Background()

	// Prompt library (optional system-prompt overrides)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to hardcoded prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Provider manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	// Refuse to serve without the active provider's credential
	if err := agentMgr.VerifyCredential(); err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	// Template variant: one per deployment
	variantName := os.Getenv("PROMPT_VARIANT")
	if variantName == "" {
		variantName = string(area.VariantAvoidance)
	}
	variant, err := area.ParseVariant(variantName)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}
	composer, err := compose.New(variant)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[COMPOSE] Active prompt variant: %s\n", variant)

	// Generation backend: provider manager by default, or a long-lived
	// Gemini client when requested
	var gen ideation.Generator
	if os.Getenv("GENERATION_BACKEND") == "gemini-agent" {
		geminiAgent, err := ideation.NewGeminiAgent(ctx)
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		defer geminiAgent.Close()
		gen = geminiAgent
		fmt.Println("[IDEATION] Using long-lived Gemini client")
	} else {
		gen = &ideation.ManagerGenerator{Manager: agentMgr, Task: ideation.TaskIdeacion}
		fmt.Printf("[IDEATION] Using provider: %s\n", agentMgr.GetActiveProvider())
	}
	orch := ideation.NewOrchestrator(composer, gen)

	// Knowledge store: Postgres when configured, file vault otherwise
	var store knowledge.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			fmt.Printf("[FATAL] Failed to connect to database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()
		store, err = knowledge.NewPGStore(ctx, pool)
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		fmt.Println("[KNOWLEDGE] Using Postgres store")
	} else {
		store, err = knowledge.NewFileStore("data")
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		fmt.Println("[KNOWLEDGE] Using file store under data/")
	}

	// Generation endpoint
	genHandler := generar.NewHandler(orch)
	http.HandleFunc("/generar", genHandler.HandleGenerar)

	// Knowledge endpoints
	knHandler := conocimiento.NewHandler(store)
	http.HandleFunc("/upload", knHandler.HandleUpload)
	http.HandleFunc("/conocimiento", knHandler.HandleGet)

	// Config endpoints
	configHandler := apiconfig.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /generar")
	fmt.Println("  - POST /upload")
	fmt.Println("  - GET  /conocimiento?area=K[&formato=html]")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
