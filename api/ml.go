// File: api/ml.go
package api

import (
	"context"
	"net/http"

	"miorai-web/models"
)

// Categories lists the tournament categories the backend accepts.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/api/ml/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

type predictMatchesRequest struct {
	NImages int `json:"n_images"`
}

type predictMatchesResponse struct {
	NImages    int                     `json:"n_images"`
	Prediction *models.MatchPrediction `json:"prediction"`
}

// PredictMatches asks the estimation service how many matches a tournament
// with nImages contestants is likely to take. The value is advisory only.
func (c *Client) PredictMatches(ctx context.Context, nImages int) (*models.MatchPrediction, error) {
	var resp predictMatchesResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/ml/predict-matches/", predictMatchesRequest{NImages: nImages}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Prediction == nil {
		return nil, &Error{Kind: KindServer, Message: "prediction missing from response"}
	}
	return resp.Prediction, nil
}
