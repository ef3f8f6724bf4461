package scoring

import "childscreen-service/internal/catalog"

// Empirical raw-sum to T-score tables for the sensory instrument, one per
// dimension. Tables are sparse: only observed raw sums have entries, and the
// keys cover different ranges per dimension.
var tScoreTables = map[string]map[int]int{
	catalog.DimVestibularBalance: {
		11: 70, 12: 64, 13: 60, 14: 57, 15: 54, 16: 52, 17: 49, 18: 47, 19: 45, 20: 43,
		21: 41, 22: 39, 23: 37, 24: 36, 25: 34, 26: 32, 27: 31, 28: 29, 29: 28, 30: 27,
		31: 26, 32: 25, 33: 25, 34: 23, 35: 20, 36: 16, 37: 16, 38: 15, 39: 14, 40: 12,
		41: 12, 42: 12, 43: 11, 44: 10,
	},
	catalog.DimNeuralInhibition: {
		9: 73, 10: 69, 11: 67, 12: 64, 13: 62, 14: 60, 15: 58, 16: 55, 17: 53, 18: 51,
		19: 49, 20: 48, 21: 46, 22: 44, 23: 42, 24: 40, 25: 39, 26: 37, 27: 36, 28: 34,
		29: 32, 30: 30, 31: 28, 32: 26, 33: 25, 34: 23, 35: 22, 36: 20, 37: 16, 38: 12,
		39: 11, 40: 8,
	},
	catalog.DimTactileDefensiveness: {
		14: 70, 15: 65, 16: 63, 17: 61, 18: 59, 19: 57, 20: 55, 21: 53, 22: 51, 23: 50,
		24: 48, 25: 47, 26: 45, 27: 44, 28: 42, 29: 41, 30: 40, 31: 38, 32: 37, 33: 36,
		34: 34, 35: 33, 36: 32, 37: 31, 38: 29, 39: 28, 40: 26, 41: 26, 42: 25, 43: 24,
		44: 22, 45: 21, 46: 20, 47: 16,
	},
	catalog.DimMotorPlanning: {
		11: 65, 12: 59, 13: 57, 14: 55, 15: 53, 16: 51, 17: 47, 18: 47, 19: 45, 20: 44,
		21: 42, 22: 40, 23: 39, 24: 38, 25: 36, 26: 35, 27: 34, 28: 33, 29: 32, 30: 31,
		31: 29, 32: 28, 33: 28, 34: 26, 35: 25, 36: 24, 37: 23, 38: 22, 39: 21, 40: 20,
		41: 16, 42: 16, 43: 16,
	},
	catalog.DimVisualSpatial: {
		5: 61, 6: 54, 7: 50, 8: 48, 9: 45, 10: 41, 11: 38, 12: 35, 13: 32, 14: 30,
		15: 27, 16: 25, 17: 23, 18: 22, 19: 20, 20: 16,
	},
	catalog.DimProprioception: {
		10: 64, 11: 59, 12: 56, 13: 54, 14: 52, 15: 51, 16: 49, 17: 48, 18: 46, 19: 45,
		20: 43, 21: 42, 22: 40, 23: 38, 24: 36, 25: 35, 26: 34, 27: 33, 28: 32, 29: 30,
		31: 29, 32: 26, 33: 25, 34: 23, 36: 22, 40: 16,
	},
	catalog.DimEmotionalSocial: {
		2: 57, 3: 49, 4: 44, 5: 38, 6: 33, 7: 29, 8: 25, 9: 22, 10: 20,
	},
	catalog.DimStressResilience: {
		2: 57, 3: 48, 4: 43, 5: 38, 6: 33, 7: 28, 8: 25, 9: 20, 10: 16,
	},
}
