package controllers

import (
	"github.com/curiokart/CurioKart/cart"
	"github.com/curiokart/CurioKart/payment"
)

// Package-level collaborators, wired once from main. Tests swap in isolated
// instances (an in-memory cart storage, a fake gateway client).
var (
	CartStore *cart.Store
	Gateway   payment.Client
)

// Init wires the controllers' collaborators.
func Init(store *cart.Store, gateway payment.Client) {
	CartStore = store
	Gateway = gateway
}
