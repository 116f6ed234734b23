// Package prompt provides interactive terminal input for the Bullhorn
// CLI: plain prompts with defaults, masked password prompts, and yes/no
// confirmations.
package prompt
