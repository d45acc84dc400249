// factory.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package storage

import (
	"context"
	"fmt"

	"github.com/localnerve/qms/internal/config"
)

// StoreType represents the type of object storage backend.
type StoreType string

const (
	StoreTypeGCS    StoreType = "gcs"
	StoreTypeS3     StoreType = "s3"
	StoreTypeMemory StoreType = "memory"
)

// New creates the object store selected by STORAGE_TYPE.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStore, error) {
	switch StoreType(cfg.Type) {
	case StoreTypeGCS, "":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("STORAGE_BUCKET is required for GCS storage")
		}
		return NewGCSStore(ctx, GCSStoreConfig{
			Bucket: cfg.Bucket,
			Prefix: cfg.Prefix,
		})
	case StoreTypeS3:
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("STORAGE_BUCKET is required for S3 storage")
		}
		return NewS3Store(ctx, S3StoreConfig{
			Bucket:   cfg.Bucket,
			Region:   cfg.S3Region,
			Endpoint: cfg.S3Endpoint,
			Prefix:   cfg.Prefix,
		})
	case StoreTypeMemory:
		return NewMemoryStore(cfg.Bucket, "", cfg.SigningKey), nil
	}

	return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
}
