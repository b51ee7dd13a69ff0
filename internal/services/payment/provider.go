package payment

import "os"

// FromEnv selects the gateway implementation. PAYMENT_GATEWAY=stripe
// enables live card charges; anything else uses the simulator.
func FromEnv() Gateway {
	if os.Getenv("PAYMENT_GATEWAY") == "stripe" {
		return NewStripeGateway()
	}
	return NewSimulatedGateway()
}
