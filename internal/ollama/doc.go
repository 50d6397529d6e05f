// Package ollama is the assistive rewrite shim: a minimal client for a
// local Ollama server plus the capability object that decides when
// generative paragraph rewriting may be attempted.
//
// The shim is strictly optional. Every failure path degrades to "leave the
// paragraph alone": a failed probe, a rate limit, a rejected model, or a
// response the sanitizer cannot trust never aborts a revision run.
package ollama
