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

//nolint:revive,testpackage // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/storefront/test/api"
)

var _ = Describe("Product Catalog", func() {
	Context("When listing products", func() {
		It("should return the whole catalog", func() {
			resp, err := client.ListProducts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))
			Expect(resp).To(api.MatchSchemaForEach(schema))

			products := api.DecodeProducts(resp)
			Expect(products).NotTo(BeEmpty())

			for _, product := range products {
				Expect(product.Price).To(BeNumerically(">", 0))
			}

			GinkgoWriter.Printf("Found %d products\n", len(products))
		})

		DescribeTable("should honour the limit parameter",
			func(limit int) {
				resp, err := client.ListProducts(ctx, api.WithLimit(limit))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))
				Expect(api.DecodeProducts(resp)).To(HaveLen(limit))
			},
			Entry("one product", 1),
			Entry("three products", 3),
			Entry("five products", 5),
			Entry("ten products", 10),
		)

		It("should sort in descending order", func() {
			resp, err := client.ListProducts(ctx, api.WithLimit(5), api.WithSort(api.SortDesc))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))

			products := api.DecodeProducts(resp)
			Expect(products).To(HaveLen(5))

			for i := 1; i < len(products); i++ {
				Expect(products[i].ID).To(BeNumerically("<", products[i-1].ID))
			}
		})
	})

	Context("When fetching a single product", func() {
		DescribeTable("should return the product with the requested id",
			func(productID int) {
				resp, err := client.GetProduct(ctx, productID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))
				Expect(resp).To(api.MatchSchema(schema))
				Expect(api.DecodeProduct(resp).ID).To(Equal(productID))
			},
			Entry("product 1", 1),
			Entry("product 2", 2),
			Entry("product 3", 3),
			Entry("product 5", 5),
			Entry("product 10", 10),
		)
	})

	Context("When browsing categories", func() {
		It("should list every known category", func() {
			resp, err := client.ListCategories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))

			var categories []string
			Expect(resp.DecodeJSON(&categories)).To(Succeed())
			api.VerifyCategoriesPresent(categories, fixtures.Categories)
		})

		It("should only return products from the requested category", func() {
			for _, category := range fixtures.Categories {
				resp, err := client.ListProductsInCategory(ctx, category)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))
				Expect(resp).To(api.MatchSchemaForEach(schema))

				products := api.DecodeProducts(resp)
				Expect(products).NotTo(BeEmpty())
				api.VerifyProductsInCategory(products, category)

				GinkgoWriter.Printf("Found %d products in %s\n", len(products), category)
			}
		})
	})

	Context("When modifying the catalog", func() {
		It("should create a product", func() {
			payload := api.NewProductPayload(fixtures).WithUniqueTitle("Test Product").Build()

			resp, err := client.CreateProduct(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{Status: http.StatusCreated}))
			Expect(resp).To(api.MatchSchema(schema))

			product := api.DecodeProduct(resp)
			Expect(product.ID).To(BeNumerically(">", 0))
			api.VerifyProductMatches(product, payload)

			GinkgoWriter.Printf("Created product %d: %s\n", product.ID, product.Title)
		})

		It("should update a product", func() {
			update := fixtures.UpdatedProduct

			resp, err := client.UpdateProduct(ctx, 1, update)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))
			Expect(resp).To(api.MatchSchema(schema))

			product := api.DecodeProduct(resp)
			api.VerifyProductUpdated(product, update)

			GinkgoWriter.Printf("Updated product %d: %s\n", product.ID, product.Title)
		})

		It("should delete a product", func() {
			resp, err := client.DeleteProduct(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))
		})
	})
})
