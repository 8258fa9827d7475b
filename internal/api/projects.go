// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// ANALYSIS RESULT TYPES
// =============================================================================

// Block holds the per-block variability metrics of one analyzed Snap!
// custom block.
type Block struct {
	Owner                        string `json:"owner"`
	Name                         string `json:"name"`
	Level                        int    `json:"level"`
	StructuralChanges            int    `json:"structuralChanges"`
	DefinitionChanges            int    `json:"definitionChanges"`
	DefinitionLevel              int    `json:"definitionLevel"`
	FeatureGuardedDefChanges     int    `json:"featureGuardedDefinitionChanges"`
	ASTPipelineDefinitionChanges int    `json:"astPipelineDefinitionChanges"`
}

// AnalysisResult is the backend's software-product-line analysis of
// one uploaded Snap! project.
type AnalysisResult struct {
	ProjectLevel      int              `json:"projectLevel"`
	Blocks            []Block          `json:"blocks"`
	TotalScripts      int              `json:"totalScripts"`
	DuplicateScripts  int              `json:"duplicateScripts"`
	TotalCombinations int              `json:"totalCombinations"`
	TanglingDict      map[int]int      `json:"tanglingDict"`
	ScatteringDict    map[string][]int `json:"scatteringDict"`
	DeadFeatures      []string         `json:"deadFeatures"`
}

// Project is one analyzed project as listed by the backend.
type Project struct {
	ID         int             `json:"id"`
	Filename   string          `json:"filename"`
	SessionID  int             `json:"sessionId"`
	UploadedAt time.Time       `json:"uploadedAt"`
	Result     *AnalysisResult `json:"result,omitempty"`
}

// =============================================================================
// PROJECT CALLS
// =============================================================================

// Analyze uploads a Snap! project XML file for analysis inside the
// given session. The backend rejects non-XML filenames and malformed
// content, so only a cheap extension check happens client-side.
func (c *Client) Analyze(ctx context.Context, filename string, content []byte, sessionID int) (*AnalysisResult, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".xml") {
		return nil, fmt.Errorf("%s: not an XML file", filename)
	}

	// Multipart bodies are single-read; build assembles a fresh one
	// per retry attempt.
	url := c.baseURL + "/api/projects/analyze"
	build := func() (*http.Request, error) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)

		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			return nil, fmt.Errorf("failed to build upload: %w", err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, fmt.Errorf("failed to build upload: %w", err)
		}
		if err := mw.WriteField("sessionId", strconv.Itoa(sessionID)); err != nil {
			return nil, fmt.Errorf("failed to build upload: %w", err)
		}
		if err := mw.Close(); err != nil {
			return nil, fmt.Errorf("failed to build upload: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf.Bytes()))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	var result AnalysisResult
	if err := c.do(ctx, build, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MyProjects lists the current user's analyzed projects.
func (c *Client) MyProjects(ctx context.Context) ([]Project, error) {
	build, err := c.jsonRequest(ctx, http.MethodGet, "/api/projects/mine", nil)
	if err != nil {
		return nil, err
	}

	var projects []Project
	if err := c.do(ctx, build, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
