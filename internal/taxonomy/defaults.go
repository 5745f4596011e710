package taxonomy

// Default returns the built-in AI newsletter taxonomy. Topic order is
// significant: earlier topics win weighted-score ties.
func Default() *Taxonomy {
	return &Taxonomy{
		Topics: []TopicDefinition{
			{
				ID: "llm",
				Keywords: []string{
					"llm", "gpt", "claude", "gemini", "openai", "anthropic", "deepseek",
					"language model", "chatgpt", "transformer", "llama", "mistral", "phi-3",
					"copilot", "cursor", "coding agent", "ai agent", "agentic",
				},
				Weight: 1.0,
				Label:  "Large Language Models",
			},
			{
				ID: "ml_research",
				Keywords: []string{
					"neural network", "deep learning", "machine learning", "training",
					"inference", "model", "benchmark", "fine-tuning", "rlhf", "reasoning",
					"diffusion", "attention", "embedding", "vector",
				},
				Weight: 0.9,
				Label:  "ML Research",
			},
			{
				ID: "ai_product",
				Keywords: []string{
					"ai-powered", "ai app", "ai startup", "ai tool", "ai api",
					"generative ai", "ai feature", "ai integration",
				},
				Weight: 0.85,
				Label:  "AI Products",
			},
			{
				ID: "ai_infra",
				Keywords: []string{
					"gpu", "cuda", "tpu", "nvidia", "h100", "inference server",
					"model serving", "vllm", "triton", "onnx", "tensorrt",
				},
				Weight: 0.9,
				Label:  "AI Infrastructure",
			},
			{
				ID: "ai_ethics",
				Keywords: []string{
					"ai safety", "alignment", "hallucination", "bias", "regulation",
					"ai policy", "ai governance", "responsible ai",
				},
				Weight: 0.8,
				Label:  "AI Ethics & Safety",
			},
			{
				ID: "developer_tools",
				Keywords: []string{
					"developer", "devtools", "ide", "vscode", "programming", "coding",
					"software engineering", "api", "sdk", "framework", "library",
				},
				Weight: 0.6,
				Label:  "Developer Tools",
			},
			{
				ID: "tech_industry",
				Keywords: []string{
					"startup", "funding", "acquisition", "layoff", "hiring",
					"tech company", "silicon valley", "yc", "vc", "series a",
				},
				Weight: 0.5,
				Label:  "Tech Industry",
			},
			{
				ID: "data_engineering",
				Keywords: []string{
					"database", "sql", "postgres", "data pipeline", "etl",
					"data warehouse", "analytics", "bigquery", "snowflake",
				},
				Weight: 0.5,
				Label:  "Data Engineering",
			},
		},
		NoiseKeywords: []string{
			"sleep in lax", "where to sleep", "music club", "diy music",
			"linguistics", "passive voice", "grammar", "heating homes",
			"weather satellite", "cancer treatment", "drug trial",
			"wifi only works", "curved things", "board games",
		},
	}
}
