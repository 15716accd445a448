// Package llm provides the generative extraction collaborator. It supports OpenAI
// compatible chat completion servers and Anthropic, with retry logic, rate limiting,
// and response caching layered on top of the raw provider.
package llm
