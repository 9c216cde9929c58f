package main

import (
	"context"
	"time"

	"github.com/Yaswanth332/TheRandomCollapse-Hackceler8/internal/app"
)

func main() {
	application := app.New()
	wait := application.Start()
	<-wait
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)
}
