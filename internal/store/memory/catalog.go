package memory

import (
	"context"
	"slices"

	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
)

func (s *Store) ListShops(ctx context.Context) ([]contract.ShopSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []contract.ShopSummary
	s.read(func(d *dataset) {
		counts := make(map[int64]int)
		for _, p := range d.products {
			counts[p.ShopID]++
		}
		for _, shop := range d.shops {
			out = append(out, contract.ShopSummary{Shop: shop, ProductsCount: counts[shop.ID]})
		}
	})
	slices.SortFunc(out, func(a, b contract.ShopSummary) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

func (s *Store) GetShop(ctx context.Context, id int64) (contract.Shop, error) {
	if err := ctx.Err(); err != nil {
		return contract.Shop{}, err
	}

	var shop contract.Shop
	var ok bool
	s.read(func(d *dataset) {
		shop, ok = d.shops[id]
	})
	if !ok {
		return contract.Shop{}, contract.NewErrShopNotFound(id)
	}
	return shop, nil
}

func (s *Store) CreateShop(ctx context.Context, shop *contract.Shop) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.update(func(d *dataset) error {
		if shopNameTaken(d, shop.Name, 0) {
			return contract.NewErrDuplicateShopName(shop.Name)
		}
		d.nextShopID++
		shop.ID = d.nextShopID
		shop.CreatedAt = s.now()
		d.shops[shop.ID] = *shop
		return nil
	})
}

func (s *Store) UpdateShop(ctx context.Context, id int64, patch contract.ShopPatch) (contract.Shop, error) {
	if err := ctx.Err(); err != nil {
		return contract.Shop{}, err
	}

	var updated contract.Shop
	err := s.update(func(d *dataset) error {
		shop, ok := d.shops[id]
		if !ok {
			return contract.NewErrShopNotFound(id)
		}
		patch.Apply(&shop)
		if shopNameTaken(d, shop.Name, id) {
			return contract.NewErrDuplicateShopName(shop.Name)
		}
		d.shops[id] = shop
		updated = shop
		return nil
	})
	return updated, err
}

func (s *Store) DeleteShop(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.update(func(d *dataset) error {
		if _, ok := d.shops[id]; !ok {
			return contract.NewErrShopNotFound(id)
		}
		count := 0
		for _, p := range d.products {
			if p.ShopID == id {
				count++
			}
		}
		if count > 0 {
			return contract.NewErrShopHasProducts(id, count)
		}
		delete(d.shops, id)
		return nil
	})
}

func (s *Store) ListProducts(ctx context.Context) ([]contract.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []contract.Product
	s.read(func(d *dataset) {
		out = sortedProducts(d, func(contract.Product) bool { return true })
	})
	return out, nil
}

func (s *Store) GetProduct(ctx context.Context, id int64) (contract.Product, error) {
	if err := ctx.Err(); err != nil {
		return contract.Product{}, err
	}

	var p contract.Product
	var ok bool
	s.read(func(d *dataset) {
		p, ok = d.products[id]
	})
	if !ok {
		return contract.Product{}, contract.NewErrProductNotFound(id)
	}
	return p, nil
}

func (s *Store) ListProductsByShop(ctx context.Context, shopID int64) ([]contract.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []contract.Product
	var found bool
	s.read(func(d *dataset) {
		_, found = d.shops[shopID]
		out = sortedProducts(d, func(p contract.Product) bool { return p.ShopID == shopID })
	})
	if !found {
		return nil, contract.NewErrShopNotFound(shopID)
	}
	return out, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *contract.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.update(func(d *dataset) error {
		if _, ok := d.shops[product.ShopID]; !ok {
			return contract.NewErrUnknownShopReference(product.ShopID)
		}
		d.nextProductID++
		product.ID = d.nextProductID
		product.CreatedAt = s.now()
		d.products[product.ID] = *product
		return nil
	})
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, patch contract.ProductPatch) (contract.Product, error) {
	if err := ctx.Err(); err != nil {
		return contract.Product{}, err
	}

	var updated contract.Product
	err := s.update(func(d *dataset) error {
		p, ok := d.products[id]
		if !ok {
			return contract.NewErrProductNotFound(id)
		}
		patch.Apply(&p)
		if _, ok := d.shops[p.ShopID]; !ok {
			return contract.NewErrUnknownShopReference(p.ShopID)
		}
		d.products[id] = p
		updated = p
		return nil
	})
	return updated, err
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.update(func(d *dataset) error {
		if _, ok := d.products[id]; !ok {
			return contract.NewErrProductNotFound(id)
		}
		delete(d.products, id)
		return nil
	})
}

func shopNameTaken(d *dataset, name string, exceptID int64) bool {
	for _, shop := range d.shops {
		if shop.ID != exceptID && shop.Name == name {
			return true
		}
	}
	return false
}
