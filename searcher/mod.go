package searcher

// Hyperparameters for the buy search

const CSquared = 2.0 // Exploration constant

const MaxCoins = 8 // Coins a single buy can use, the price of a Province

const Loss = 0.0 // Virtual loss held by an arm while an episode is in flight

// BuyingValue is the number of coins in a hand that can actually be spent,
// given the number of buys. Coins beyond MaxCoins per buy are useless, and so
// is a coin that leaves exactly 1 or 7 for the last buy.
func BuyingValue(coins, buys int) int {
	if coins > buys*MaxCoins {
		coins = buys * MaxCoins
	}
	if rest := coins - (buys-1)*MaxCoins; rest == 1 || rest == 7 {
		coins--
	}
	return coins
}

// reward normalises a simulated hand to [0, 1].
func reward(coins, buys int) float64 {
	return float64(BuyingValue(coins, buys)) / MaxCoins
}
