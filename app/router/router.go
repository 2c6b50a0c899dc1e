package router

import (
	"net/http"
	"strings"

	"gcwab-store/app/controller"
)

type Controllers struct {
	Cart       *controller.CartController
	Catalog    *controller.CatalogController
	Vehicle    *controller.VehicleController
	Chat       *controller.ChatController
	News       *controller.NewsController
	Engagement *controller.EngagementController
	Media      *controller.MediaController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Cart routes
	http.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Cart.GetCart(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Cart.ClearCart(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Cart.AddItem(w, r)
		} else if r.Method == http.MethodPut {
			controllers.Cart.UpdateItem(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Cart.RemoveItem(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Fashion catalog routes
	http.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Catalog.ListProducts(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Product by ID
	http.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Catalog.GetProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Catalog.CreateProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			controllers.Catalog.UpdateProduct(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Catalog.DeleteProduct(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Vehicle routes
	http.HandleFunc("/vehicles", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Vehicle.ListVehicles(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Vehicle by ID, plus the like endpoints (must route before the generic /:id)
	http.HandleFunc("/vehicles/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/vehicles/")

		if strings.HasSuffix(path, "/like") {
			if r.Method == http.MethodPost {
				controllers.Engagement.AddLike(w, r)
			} else if r.Method == http.MethodDelete {
				controllers.Engagement.RemoveLike(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}
		if strings.HasSuffix(path, "/likes") {
			if r.Method == http.MethodGet {
				controllers.Engagement.GetLikes(w, r)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if r.Method == http.MethodGet {
			controllers.Vehicle.GetVehicle(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	http.HandleFunc("/admin/vehicles", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Vehicle.CreateVehicle(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Brochure endpoints (must route before the generic /:id)
	http.HandleFunc("/admin/vehicles/brochure", controllers.Vehicle.DownloadBrochure)
	http.HandleFunc("/admin/vehicles/brochure/render", controllers.Vehicle.RenderBrochure)

	http.HandleFunc("/admin/vehicles/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			controllers.Vehicle.UpdateVehicle(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Vehicle.DeleteVehicle(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Finance estimator
	http.HandleFunc("/finance/estimate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Engagement.EstimateFinance(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Engagement settings
	http.HandleFunc("/admin/settings/engagement", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Engagement.GetEngagementConfig(w, r)
		} else if r.Method == http.MethodPut {
			controllers.Engagement.UpdateEngagementConfig(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Chat routes
	http.HandleFunc("/chat/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if r.Method == http.MethodGet {
			controllers.Chat.GetMessages(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Chat.PostMessage(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/admin/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Chat.ListConversations(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/admin/chat/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			controllers.Chat.DeleteConversation(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// News feed
	http.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.News.GetNews(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Media routes
	http.HandleFunc("/admin/media", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Media.Upload(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Optimized image variants
	http.HandleFunc("/media/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") && r.Method == http.MethodGet {
			controllers.Media.GetImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})
}
