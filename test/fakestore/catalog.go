/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fakestore

import (
	"strconv"
)

// Rating is the aggregated customer rating of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog entry.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

const (
	CategoryMensClothing   = "men's clothing"
	CategoryJewelery       = "jewelery"
	CategoryElectronics    = "electronics"
	CategoryWomensClothing = "women's clothing"
)

// Categories is the category list in the order the catalog reports it.
func Categories() []string {
	return []string{
		CategoryElectronics,
		CategoryJewelery,
		CategoryMensClothing,
		CategoryWomensClothing,
	}
}

func product(id int, title string, price float64, category string, rate float64, count int) Product {
	return Product{
		ID:          id,
		Title:       title,
		Price:       price,
		Description: title + " from the storefront catalog.",
		Category:    category,
		Image:       "https://fakestoreapi.com/img/product-" + strconv.Itoa(id) + ".jpg",
		Rating: &Rating{
			Rate:  rate,
			Count: count,
		},
	}
}

// DefaultCatalog returns the seed products, ids 1 to 20 ordered by id.
func DefaultCatalog() []Product {
	return []Product{
		product(1, "Foldsack No. 1 Backpack", 109.95, CategoryMensClothing, 3.9, 120),
		product(2, "Mens Casual Premium Slim Fit T-Shirts", 22.3, CategoryMensClothing, 4.1, 259),
		product(3, "Mens Cotton Jacket", 55.99, CategoryMensClothing, 4.7, 500),
		product(4, "Mens Casual Slim Fit", 15.99, CategoryMensClothing, 2.1, 430),
		product(5, "Dragon Station Chain Bracelet", 695, CategoryJewelery, 4.6, 400),
		product(6, "Solid Gold Petite Micropave", 168, CategoryJewelery, 3.9, 70),
		product(7, "White Gold Plated Princess Ring", 9.99, CategoryJewelery, 3, 400),
		product(8, "Rose Gold Plated Double Flared Tunnel Plug Earrings", 10.99, CategoryJewelery, 1.9, 100),
		product(9, "Portable External Hard Drive 2TB", 64, CategoryElectronics, 3.3, 203),
		product(10, "SSD 1TB Internal SATA III", 109, CategoryElectronics, 2.9, 470),
		product(11, "SSD 256GB Internal 3D NAND", 109, CategoryElectronics, 4.8, 319),
		product(12, "Gaming Drive 4TB Portable External Hard Drive", 114, CategoryElectronics, 4.8, 400),
		product(13, "21.5 inch Full HD IPS Ultra-Thin Monitor", 599, CategoryElectronics, 2.9, 250),
		product(14, "49 inch Curved Gaming Monitor 144Hz", 999.99, CategoryElectronics, 2.2, 140),
		product(15, "Womens 3-in-1 Snowboard Jacket Winter Coat", 56.99, CategoryWomensClothing, 2.6, 235),
		product(16, "Womens Removable Hooded Faux Leather Moto Biker Jacket", 29.95, CategoryWomensClothing, 2.9, 340),
		product(17, "Rain Jacket Women Windbreaker Striped Climbing Raincoats", 39.99, CategoryWomensClothing, 3.8, 679),
		product(18, "Womens Solid Short Sleeve Boat Neck V", 9.85, CategoryWomensClothing, 4.7, 130),
		product(19, "Womens Short Sleeve Moisture", 7.95, CategoryWomensClothing, 4.5, 146),
		product(20, "Womens Casual Cotton Short", 12.99, CategoryWomensClothing, 3.6, 145),
	}
}
