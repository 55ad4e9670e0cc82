package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gin-gonic/gin"

	"audit-backend/internal/audit"
	"audit-backend/internal/docai"
	textractclient "audit-backend/internal/docai/textract"
	"audit-backend/internal/llm"
	"audit-backend/internal/llm/bedrock"
	"audit-backend/internal/records"
	"audit-backend/internal/server"
	"audit-backend/internal/shared/config"
)

// App holds shared dependencies. Service clients are constructed once here
// and reused across invocations.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Analyzer docai.Analyzer
	LLM      llm.Client
	Records  audit.RecordStore
	Audit    *audit.Service
}

// Build prepares shared dependencies.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	awsCfg, err := loadAWSConfig(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, err
	}

	analyzer := textractclient.New(awsCfg)

	llmClient := llm.Client(llm.PlaceholderClient{})
	if cfg.LLMProvider == "bedrock" {
		// Bedrock may live in a different region than the rest of the stack.
		bedrockCfg := awsCfg
		if strings.TrimSpace(cfg.BedrockRegion) != "" {
			bedrockCfg.Region = cfg.BedrockRegion
		}
		client, err := bedrock.New(bedrockCfg, cfg.BedrockModelID, cfg.LLMMaxTokens)
		if err != nil {
			return nil, err
		}
		llmClient = client
	}

	recordStore, err := buildRecords(awsCfg, cfg)
	if err != nil {
		return nil, err
	}

	svc := &audit.Service{
		Analyzer: analyzer,
		LLM:      llmClient,
		Records:  recordStore,
	}

	app := &App{
		Config:   cfg,
		Analyzer: analyzer,
		LLM:      llmClient,
		Records:  recordStore,
		Audit:    svc,
	}
	app.Router = server.NewRouter(server.RouterDeps{Audit: svc})

	return app, nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

func buildRecords(awsCfg aws.Config, cfg config.Config) (audit.RecordStore, error) {
	if cfg.RecordStoreType == "memory" {
		return records.NewMemoryRepo(), nil
	}
	if strings.TrimSpace(cfg.TableName) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: USER_TABLE_NAME empty; using in-memory record store")
			return records.NewMemoryRepo(), nil
		}
		return nil, fmt.Errorf("USER_TABLE_NAME is required")
	}
	return records.NewDynamoRepo(awsCfg, cfg.TableName)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
