// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Business is a restaurant candidate as returned by the search provider.
// Values are passed through to clients unchanged.
type Business struct {
	ID           string      `json:"id"`
	Alias        string      `json:"alias,omitempty"`
	Name         string      `json:"name"`
	ImageURL     string      `json:"image_url,omitempty"`
	IsClosed     bool        `json:"is_closed"`
	URL          string      `json:"url,omitempty"`
	ReviewCount  int         `json:"review_count"`
	Categories   []Category  `json:"categories,omitempty"`
	Rating       float64     `json:"rating"`
	Coordinates  Coordinates `json:"coordinates"`
	Price        string      `json:"price,omitempty"`
	Location     Location    `json:"location"`
	Phone        string      `json:"phone,omitempty"`
	DisplayPhone string      `json:"display_phone,omitempty"`
	Distance     float64     `json:"distance"`
}

type Category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	Address1       string   `json:"address1,omitempty"`
	City           string   `json:"city,omitempty"`
	ZipCode        string   `json:"zip_code,omitempty"`
	Country        string   `json:"country,omitempty"`
	DisplayAddress []string `json:"display_address,omitempty"`
}

// SearchQuery describes one provider search around a point.
type SearchQuery struct {
	Latitude  float64
	Longitude float64
	Term      string
	SortBy    string
	Limit     int
}
