package dto

type FavoriteRequest struct {
	ModelID int `json:"modelId" validate:"required"`
}

type FavoritesResponse struct {
	Favorites []int `json:"favorites"`
}
