package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	AWSRegion       string
	BedrockRegion   string
	TableName       string
	RecordStoreType string
	LLMProvider     string
	BedrockModelID  string
	LLMMaxTokens    int
	ObjectStoreType string
	LocalStoreDir   string
	ReceiptsBucket  string
	SSEKMSKeyID     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	table := os.Getenv("USER_TABLE_NAME")

	if env == "production" && table == "" {
		log.Printf("USER_TABLE_NAME is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		AWSRegion:       getEnv("AWS_REGION", ""),
		BedrockRegion:   getEnv("BEDROCK_REGION", ""),
		TableName:       table,
		RecordStoreType: normalizeRecordStore(getEnv("RECORD_STORE", "dynamo")),
		LLMProvider:     getEnv("LLM_PROVIDER", "bedrock"),
		BedrockModelID:  getEnv("BEDROCK_MODEL_ID", "meta.llama3-8b-instruct-v1:0"),
		LLMMaxTokens:    getEnvInt("LLM_MAX_TOKENS", 500),
		ObjectStoreType: normalizeObjectStore(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		ReceiptsBucket:  getEnv("RECEIPTS_S3_BUCKET", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeRecordStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "memory":
		return "memory"
	default:
		return "dynamo"
	}
}

func normalizeObjectStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
