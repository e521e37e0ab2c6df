package catalog

import "sync"

type CarModel struct {
	ID        int     `json:"id"`
	ModelName string  `json:"model_name"`
	Trim      string  `json:"trim"`
	MSRP      float64 `json:"msrp"`
	BodyType  string  `json:"body_type"`
	MPG       string  `json:"mpg"`
	AWD       bool    `json:"awd"`
	GoodLease bool    `json:"good_lease"`
	Blurb     string  `json:"blurb"`
}

var models = []CarModel{
	{ID: 1, ModelName: "Corolla Hybrid LE", Trim: "Base", MSRP: 24000, BodyType: "Sedan", MPG: "50", AWD: false, GoodLease: true, Blurb: "Efficient daily driver"},
	{ID: 2, ModelName: "Camry SE", Trim: "SE", MSRP: 29500, BodyType: "Sedan", MPG: "33", AWD: true, GoodLease: true, Blurb: "Comfort with punch"},
	{ID: 3, ModelName: "RAV4 LE", Trim: "LE", MSRP: 28500, BodyType: "SUV", MPG: "30", AWD: true, GoodLease: false, Blurb: "All-round family pick"},
	{ID: 4, ModelName: "RAV4 Hybrid XLE", Trim: "XLE", MSRP: 32500, BodyType: "SUV", MPG: "40", AWD: true, GoodLease: true, Blurb: "Hybrid utility"},
	{ID: 5, ModelName: "Prius", Trim: "Base", MSRP: 28000, BodyType: "Sedan", MPG: "57", AWD: false, GoodLease: true, Blurb: "Peak efficiency"},
	{ID: 6, ModelName: "Highlander", Trim: "Base", MSRP: 38500, BodyType: "SUV", MPG: "24", AWD: true, GoodLease: false, Blurb: "3-row comfort"},
	{ID: 7, ModelName: "Tacoma SR5", Trim: "SR5", MSRP: 34500, BodyType: "Truck", MPG: "21", AWD: true, GoodLease: false, Blurb: "Weekend warrior"},
	{ID: 8, ModelName: "GR Corolla", Trim: "Core", MSRP: 36000, BodyType: "Hatch", MPG: "28", AWD: true, GoodLease: false, Blurb: "Hot hatch fun"},
}

// Models returns the static catalog.
func Models() []CarModel {
	out := make([]CarModel, len(models))
	copy(out, models)
	return out
}

// FavoritesStore keeps per-user favorite model ids in memory.
type FavoritesStore struct {
	mu        sync.RWMutex
	favorites map[int]map[int]struct{}
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{favorites: make(map[int]map[int]struct{})}
}

func (fs *FavoritesStore) List(userID int) []int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	set := fs.favorites[userID]
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

func (fs *FavoritesStore) Add(userID, modelID int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	set, ok := fs.favorites[userID]
	if !ok {
		set = make(map[int]struct{})
		fs.favorites[userID] = set
	}
	set[modelID] = struct{}{}
}

func (fs *FavoritesStore) Remove(userID, modelID int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if set, ok := fs.favorites[userID]; ok {
		delete(set, modelID)
	}
}
