// Package log provides structured logging for snacks.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger whose API follows the Fields-map
//              style used across the code base, encoded and written by zap.
//              The library packages never log; the CLI and the batch
//              evaluator do.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v1.0.0: zap backend, JSON and console formats
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelDebug,
//	    Format: log.FormatConsole,
//	    Name:   "snacks",
//	})
//
//	logger.Info("job evaluated", log.Fields{"kind": "mean", "result": 0.0})
//	logger.ErrorWithErr("job failed", err, log.Int("index", 3))
//
//	timer := logger.StartTimer("batch")
//	defer timer.Stop()
package log
